package font

import "strconv"

// ID identifies a font. Values are stable and follow the LovyanGFX font
// order, so an ID can be stored or sent to another process.
type ID uint16

// Font identifiers. Only a subset resolves in a given build; see Resolve.
const (
	Font0 ID = iota
	Font2
	Font4
	Font6
	Font7
	Font8
	Font8x8C64
	AsciiFont8x16
	AsciiFont24x48
	TomThumb
	FreeMono9pt7b
	FreeMono12pt7b
	FreeMono18pt7b
	FreeMono24pt7b
	FreeMonoBold9pt7b
	FreeMonoBold12pt7b
	FreeMonoBold18pt7b
	FreeMonoBold24pt7b
	FreeMonoOblique9pt7b
	FreeMonoOblique12pt7b
	FreeMonoOblique18pt7b
	FreeMonoOblique24pt7b
	FreeMonoBoldOblique9pt7b
	FreeMonoBoldOblique12pt7b
	FreeMonoBoldOblique18pt7b
	FreeMonoBoldOblique24pt7b
	FreeSans9pt7b
	FreeSans12pt7b
	FreeSans18pt7b
	FreeSans24pt7b
	FreeSansBold9pt7b
	FreeSansBold12pt7b
	FreeSansBold18pt7b
	FreeSansBold24pt7b
	FreeSansOblique9pt7b
	FreeSansOblique12pt7b
	FreeSansOblique18pt7b
	FreeSansOblique24pt7b
	FreeSansBoldOblique9pt7b
	FreeSansBoldOblique12pt7b
	FreeSansBoldOblique18pt7b
	FreeSansBoldOblique24pt7b
	FreeSerif9pt7b
	FreeSerif12pt7b
	FreeSerif18pt7b
	FreeSerif24pt7b
	FreeSerifItalic9pt7b
	FreeSerifItalic12pt7b
	FreeSerifItalic18pt7b
	FreeSerifItalic24pt7b
	FreeSerifBold9pt7b
	FreeSerifBold12pt7b
	FreeSerifBold18pt7b
	FreeSerifBold24pt7b
	FreeSerifBoldItalic9pt7b
	FreeSerifBoldItalic12pt7b
	FreeSerifBoldItalic18pt7b
	FreeSerifBoldItalic24pt7b
	OrbitronLight24
	OrbitronLight32
	RobotoThin24
	Satisfy24
	Yellowtail32
	DejaVu9
	DejaVu12
	DejaVu18
	DejaVu24
	DejaVu40
	DejaVu56
	DejaVu72
	JapanMincho8
	JapanMincho12
	JapanMincho16
	JapanMincho20
	JapanMincho24
	JapanMincho28
	JapanMincho32
	JapanMincho36
	JapanMincho40
	JapanMinchoP8
	JapanMinchoP12
	JapanMinchoP16
	JapanMinchoP20
	JapanMinchoP24
	JapanMinchoP28
	JapanMinchoP32
	JapanMinchoP36
	JapanMinchoP40
	JapanGothic8
	JapanGothic12
	JapanGothic16
	JapanGothic20
	JapanGothic24
	JapanGothic28
	JapanGothic32
	JapanGothic36
	JapanGothic40
	JapanGothicP8
	JapanGothicP12
	JapanGothicP16
	JapanGothicP20
	JapanGothicP24
	JapanGothicP28
	JapanGothicP32
	JapanGothicP36
	JapanGothicP40
	EfontCN10
	EfontCN10Bold
	EfontCN10BoldItalic
	EfontCN10Italic
	EfontCN12
	EfontCN12Bold
	EfontCN12BoldItalic
	EfontCN12Italic
	EfontCN14
	EfontCN14Bold
	EfontCN14BoldItalic
	EfontCN14Italic
	EfontCN16
	EfontCN16Bold
	EfontCN16BoldItalic
	EfontCN16Italic
	EfontCN24
	EfontCN24Bold
	EfontCN24BoldItalic
	EfontCN24Italic
	EfontJA10
	EfontJA10Bold
	EfontJA10BoldItalic
	EfontJA10Italic
	EfontJA12
	EfontJA12Bold
	EfontJA12BoldItalic
	EfontJA12Italic
	EfontJA14
	EfontJA14Bold
	EfontJA14BoldItalic
	EfontJA14Italic
	EfontJA16
	EfontJA16Bold
	EfontJA16BoldItalic
	EfontJA16Italic
	EfontJA24
	EfontJA24Bold
	EfontJA24BoldItalic
	EfontJA24Italic
	EfontKR10
	EfontKR10Bold
	EfontKR10BoldItalic
	EfontKR10Italic
	EfontKR12
	EfontKR12Bold
	EfontKR12BoldItalic
	EfontKR12Italic
	EfontKR14
	EfontKR14Bold
	EfontKR14BoldItalic
	EfontKR14Italic
	EfontKR16
	EfontKR16Bold
	EfontKR16BoldItalic
	EfontKR16Italic
	EfontKR24
	EfontKR24Bold
	EfontKR24BoldItalic
	EfontKR24Italic
	EfontTW10
	EfontTW10Bold
	EfontTW10BoldItalic
	EfontTW10Italic
	EfontTW12
	EfontTW12Bold
	EfontTW12BoldItalic
	EfontTW12Italic
	EfontTW14
	EfontTW14Bold
	EfontTW14BoldItalic
	EfontTW14Italic
	EfontTW16
	EfontTW16Bold
	EfontTW16BoldItalic
	EfontTW16Italic
	EfontTW24
	EfontTW24Bold
	EfontTW24BoldItalic
	EfontTW24Italic

	idCount
)

var idNames = [idCount]string{
	Font0: "Font0",
	Font2: "Font2",
	Font4: "Font4",
	Font6: "Font6",
	Font7: "Font7",
	Font8: "Font8",
	Font8x8C64: "Font8x8C64",
	AsciiFont8x16: "AsciiFont8x16",
	AsciiFont24x48: "AsciiFont24x48",
	TomThumb: "TomThumb",
	FreeMono9pt7b: "FreeMono9pt7b",
	FreeMono12pt7b: "FreeMono12pt7b",
	FreeMono18pt7b: "FreeMono18pt7b",
	FreeMono24pt7b: "FreeMono24pt7b",
	FreeMonoBold9pt7b: "FreeMonoBold9pt7b",
	FreeMonoBold12pt7b: "FreeMonoBold12pt7b",
	FreeMonoBold18pt7b: "FreeMonoBold18pt7b",
	FreeMonoBold24pt7b: "FreeMonoBold24pt7b",
	FreeMonoOblique9pt7b: "FreeMonoOblique9pt7b",
	FreeMonoOblique12pt7b: "FreeMonoOblique12pt7b",
	FreeMonoOblique18pt7b: "FreeMonoOblique18pt7b",
	FreeMonoOblique24pt7b: "FreeMonoOblique24pt7b",
	FreeMonoBoldOblique9pt7b: "FreeMonoBoldOblique9pt7b",
	FreeMonoBoldOblique12pt7b: "FreeMonoBoldOblique12pt7b",
	FreeMonoBoldOblique18pt7b: "FreeMonoBoldOblique18pt7b",
	FreeMonoBoldOblique24pt7b: "FreeMonoBoldOblique24pt7b",
	FreeSans9pt7b: "FreeSans9pt7b",
	FreeSans12pt7b: "FreeSans12pt7b",
	FreeSans18pt7b: "FreeSans18pt7b",
	FreeSans24pt7b: "FreeSans24pt7b",
	FreeSansBold9pt7b: "FreeSansBold9pt7b",
	FreeSansBold12pt7b: "FreeSansBold12pt7b",
	FreeSansBold18pt7b: "FreeSansBold18pt7b",
	FreeSansBold24pt7b: "FreeSansBold24pt7b",
	FreeSansOblique9pt7b: "FreeSansOblique9pt7b",
	FreeSansOblique12pt7b: "FreeSansOblique12pt7b",
	FreeSansOblique18pt7b: "FreeSansOblique18pt7b",
	FreeSansOblique24pt7b: "FreeSansOblique24pt7b",
	FreeSansBoldOblique9pt7b: "FreeSansBoldOblique9pt7b",
	FreeSansBoldOblique12pt7b: "FreeSansBoldOblique12pt7b",
	FreeSansBoldOblique18pt7b: "FreeSansBoldOblique18pt7b",
	FreeSansBoldOblique24pt7b: "FreeSansBoldOblique24pt7b",
	FreeSerif9pt7b: "FreeSerif9pt7b",
	FreeSerif12pt7b: "FreeSerif12pt7b",
	FreeSerif18pt7b: "FreeSerif18pt7b",
	FreeSerif24pt7b: "FreeSerif24pt7b",
	FreeSerifItalic9pt7b: "FreeSerifItalic9pt7b",
	FreeSerifItalic12pt7b: "FreeSerifItalic12pt7b",
	FreeSerifItalic18pt7b: "FreeSerifItalic18pt7b",
	FreeSerifItalic24pt7b: "FreeSerifItalic24pt7b",
	FreeSerifBold9pt7b: "FreeSerifBold9pt7b",
	FreeSerifBold12pt7b: "FreeSerifBold12pt7b",
	FreeSerifBold18pt7b: "FreeSerifBold18pt7b",
	FreeSerifBold24pt7b: "FreeSerifBold24pt7b",
	FreeSerifBoldItalic9pt7b: "FreeSerifBoldItalic9pt7b",
	FreeSerifBoldItalic12pt7b: "FreeSerifBoldItalic12pt7b",
	FreeSerifBoldItalic18pt7b: "FreeSerifBoldItalic18pt7b",
	FreeSerifBoldItalic24pt7b: "FreeSerifBoldItalic24pt7b",
	OrbitronLight24: "Orbitron_Light_24",
	OrbitronLight32: "Orbitron_Light_32",
	RobotoThin24: "Roboto_Thin_24",
	Satisfy24: "Satisfy_24",
	Yellowtail32: "Yellowtail_32",
	DejaVu9: "DejaVu9",
	DejaVu12: "DejaVu12",
	DejaVu18: "DejaVu18",
	DejaVu24: "DejaVu24",
	DejaVu40: "DejaVu40",
	DejaVu56: "DejaVu56",
	DejaVu72: "DejaVu72",
	JapanMincho8: "lgfxJapanMincho_8",
	JapanMincho12: "lgfxJapanMincho_12",
	JapanMincho16: "lgfxJapanMincho_16",
	JapanMincho20: "lgfxJapanMincho_20",
	JapanMincho24: "lgfxJapanMincho_24",
	JapanMincho28: "lgfxJapanMincho_28",
	JapanMincho32: "lgfxJapanMincho_32",
	JapanMincho36: "lgfxJapanMincho_36",
	JapanMincho40: "lgfxJapanMincho_40",
	JapanMinchoP8: "lgfxJapanMinchoP_8",
	JapanMinchoP12: "lgfxJapanMinchoP_12",
	JapanMinchoP16: "lgfxJapanMinchoP_16",
	JapanMinchoP20: "lgfxJapanMinchoP_20",
	JapanMinchoP24: "lgfxJapanMinchoP_24",
	JapanMinchoP28: "lgfxJapanMinchoP_28",
	JapanMinchoP32: "lgfxJapanMinchoP_32",
	JapanMinchoP36: "lgfxJapanMinchoP_36",
	JapanMinchoP40: "lgfxJapanMinchoP_40",
	JapanGothic8: "lgfxJapanGothic_8",
	JapanGothic12: "lgfxJapanGothic_12",
	JapanGothic16: "lgfxJapanGothic_16",
	JapanGothic20: "lgfxJapanGothic_20",
	JapanGothic24: "lgfxJapanGothic_24",
	JapanGothic28: "lgfxJapanGothic_28",
	JapanGothic32: "lgfxJapanGothic_32",
	JapanGothic36: "lgfxJapanGothic_36",
	JapanGothic40: "lgfxJapanGothic_40",
	JapanGothicP8: "lgfxJapanGothicP_8",
	JapanGothicP12: "lgfxJapanGothicP_12",
	JapanGothicP16: "lgfxJapanGothicP_16",
	JapanGothicP20: "lgfxJapanGothicP_20",
	JapanGothicP24: "lgfxJapanGothicP_24",
	JapanGothicP28: "lgfxJapanGothicP_28",
	JapanGothicP32: "lgfxJapanGothicP_32",
	JapanGothicP36: "lgfxJapanGothicP_36",
	JapanGothicP40: "lgfxJapanGothicP_40",
	EfontCN10: "efontCN_10",
	EfontCN10Bold: "efontCN_10_b",
	EfontCN10BoldItalic: "efontCN_10_bi",
	EfontCN10Italic: "efontCN_10_i",
	EfontCN12: "efontCN_12",
	EfontCN12Bold: "efontCN_12_b",
	EfontCN12BoldItalic: "efontCN_12_bi",
	EfontCN12Italic: "efontCN_12_i",
	EfontCN14: "efontCN_14",
	EfontCN14Bold: "efontCN_14_b",
	EfontCN14BoldItalic: "efontCN_14_bi",
	EfontCN14Italic: "efontCN_14_i",
	EfontCN16: "efontCN_16",
	EfontCN16Bold: "efontCN_16_b",
	EfontCN16BoldItalic: "efontCN_16_bi",
	EfontCN16Italic: "efontCN_16_i",
	EfontCN24: "efontCN_24",
	EfontCN24Bold: "efontCN_24_b",
	EfontCN24BoldItalic: "efontCN_24_bi",
	EfontCN24Italic: "efontCN_24_i",
	EfontJA10: "efontJA_10",
	EfontJA10Bold: "efontJA_10_b",
	EfontJA10BoldItalic: "efontJA_10_bi",
	EfontJA10Italic: "efontJA_10_i",
	EfontJA12: "efontJA_12",
	EfontJA12Bold: "efontJA_12_b",
	EfontJA12BoldItalic: "efontJA_12_bi",
	EfontJA12Italic: "efontJA_12_i",
	EfontJA14: "efontJA_14",
	EfontJA14Bold: "efontJA_14_b",
	EfontJA14BoldItalic: "efontJA_14_bi",
	EfontJA14Italic: "efontJA_14_i",
	EfontJA16: "efontJA_16",
	EfontJA16Bold: "efontJA_16_b",
	EfontJA16BoldItalic: "efontJA_16_bi",
	EfontJA16Italic: "efontJA_16_i",
	EfontJA24: "efontJA_24",
	EfontJA24Bold: "efontJA_24_b",
	EfontJA24BoldItalic: "efontJA_24_bi",
	EfontJA24Italic: "efontJA_24_i",
	EfontKR10: "efontKR_10",
	EfontKR10Bold: "efontKR_10_b",
	EfontKR10BoldItalic: "efontKR_10_bi",
	EfontKR10Italic: "efontKR_10_i",
	EfontKR12: "efontKR_12",
	EfontKR12Bold: "efontKR_12_b",
	EfontKR12BoldItalic: "efontKR_12_bi",
	EfontKR12Italic: "efontKR_12_i",
	EfontKR14: "efontKR_14",
	EfontKR14Bold: "efontKR_14_b",
	EfontKR14BoldItalic: "efontKR_14_bi",
	EfontKR14Italic: "efontKR_14_i",
	EfontKR16: "efontKR_16",
	EfontKR16Bold: "efontKR_16_b",
	EfontKR16BoldItalic: "efontKR_16_bi",
	EfontKR16Italic: "efontKR_16_i",
	EfontKR24: "efontKR_24",
	EfontKR24Bold: "efontKR_24_b",
	EfontKR24BoldItalic: "efontKR_24_bi",
	EfontKR24Italic: "efontKR_24_i",
	EfontTW10: "efontTW_10",
	EfontTW10Bold: "efontTW_10_b",
	EfontTW10BoldItalic: "efontTW_10_bi",
	EfontTW10Italic: "efontTW_10_i",
	EfontTW12: "efontTW_12",
	EfontTW12Bold: "efontTW_12_b",
	EfontTW12BoldItalic: "efontTW_12_bi",
	EfontTW12Italic: "efontTW_12_i",
	EfontTW14: "efontTW_14",
	EfontTW14Bold: "efontTW_14_b",
	EfontTW14BoldItalic: "efontTW_14_bi",
	EfontTW14Italic: "efontTW_14_i",
	EfontTW16: "efontTW_16",
	EfontTW16Bold: "efontTW_16_b",
	EfontTW16BoldItalic: "efontTW_16_bi",
	EfontTW16Italic: "efontTW_16_i",
	EfontTW24: "efontTW_24",
	EfontTW24Bold: "efontTW_24_b",
	EfontTW24BoldItalic: "efontTW_24_bi",
	EfontTW24Italic: "efontTW_24_i",
}

// String returns the LovyanGFX name of the font, such as "FreeMono9pt7b".
func (id ID) String() string {
	if id < idCount {
		return idNames[id]
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// IsValid reports whether id is inside the identifier space.
func (id ID) IsValid() bool {
	return id < idCount
}

// ParseID returns the identifier with the given LovyanGFX name.
func ParseID(name string) (ID, bool) {
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}
