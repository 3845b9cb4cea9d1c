package shape

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Per-letter presentation forms of the Arabic script, derived from the
// compatibility decompositions of the Unicode Arabic Presentation Forms
// blocks (U+FB50..U+FDFF, U+FE70..U+FEFF).

// Isolated presentation form per general letter.
var isolatedForm = map[rune]rune{
	0x0621: 0xFE80, // ARABIC LETTER HAMZA
	0x0627: 0xFE8D, // ARABIC LETTER ALEF
	0x0628: 0xFE8F, // ARABIC LETTER BEH
	0x0629: 0xFE93, // ARABIC LETTER TEH MARBUTA
	0x062A: 0xFE95, // ARABIC LETTER TEH
	0x062B: 0xFE99, // ARABIC LETTER THEH
	0x062C: 0xFE9D, // ARABIC LETTER JEEM
	0x062D: 0xFEA1, // ARABIC LETTER HAH
	0x062E: 0xFEA5, // ARABIC LETTER KHAH
	0x062F: 0xFEA9, // ARABIC LETTER DAL
	0x0630: 0xFEAB, // ARABIC LETTER THAL
	0x0631: 0xFEAD, // ARABIC LETTER REH
	0x0632: 0xFEAF, // ARABIC LETTER ZAIN
	0x0633: 0xFEB1, // ARABIC LETTER SEEN
	0x0634: 0xFEB5, // ARABIC LETTER SHEEN
	0x0635: 0xFEB9, // ARABIC LETTER SAD
	0x0636: 0xFEBD, // ARABIC LETTER DAD
	0x0637: 0xFEC1, // ARABIC LETTER TAH
	0x0638: 0xFEC5, // ARABIC LETTER ZAH
	0x0639: 0xFEC9, // ARABIC LETTER AIN
	0x063A: 0xFECD, // ARABIC LETTER GHAIN
	0x0641: 0xFED1, // ARABIC LETTER FEH
	0x0642: 0xFED5, // ARABIC LETTER QAF
	0x0643: 0xFED9, // ARABIC LETTER KAF
	0x0644: 0xFEDD, // ARABIC LETTER LAM
	0x0645: 0xFEE1, // ARABIC LETTER MEEM
	0x0646: 0xFEE5, // ARABIC LETTER NOON
	0x0647: 0xFEE9, // ARABIC LETTER HEH
	0x0648: 0xFEED, // ARABIC LETTER WAW
	0x0649: 0xFEEF, // ARABIC LETTER ALEF MAKSURA
	0x064A: 0xFEF1, // ARABIC LETTER YEH
	0x0671: 0xFB50, // ARABIC LETTER ALEF WASLA
	0x0679: 0xFB66, // ARABIC LETTER TTEH
	0x067E: 0xFB56, // ARABIC LETTER PEH
	0x0686: 0xFB7A, // ARABIC LETTER TCHEH
	0x0688: 0xFB88, // ARABIC LETTER DDAL
	0x0691: 0xFB8C, // ARABIC LETTER RREH
	0x0698: 0xFB8A, // ARABIC LETTER JEH
	0x06A9: 0xFB8E, // ARABIC LETTER KEHEH
	0x06AD: 0xFBD3, // ARABIC LETTER NG
	0x06AF: 0xFB92, // ARABIC LETTER GAF
	0x06BA: 0xFB9E, // ARABIC LETTER NOON GHUNNA
	0x06CC: 0xFBFC, // ARABIC LETTER FARSI YEH
	0x06D2: 0xFBAE, // ARABIC LETTER YEH BARREE
}

// Initial presentation form per general letter. Letters which never join
// forward (terminators, hamza) carry their isolated form here.
var initialForm = map[rune]rune{
	0x0621: 0xFE80, // ARABIC LETTER HAMZA
	0x0627: 0xFE8D, // ARABIC LETTER ALEF
	0x0628: 0xFE91, // ARABIC LETTER BEH
	0x0629: 0xFE93, // ARABIC LETTER TEH MARBUTA
	0x062A: 0xFE97, // ARABIC LETTER TEH
	0x062B: 0xFE9B, // ARABIC LETTER THEH
	0x062C: 0xFE9F, // ARABIC LETTER JEEM
	0x062D: 0xFEA3, // ARABIC LETTER HAH
	0x062E: 0xFEA7, // ARABIC LETTER KHAH
	0x062F: 0xFEA9, // ARABIC LETTER DAL
	0x0630: 0xFEAB, // ARABIC LETTER THAL
	0x0631: 0xFEAD, // ARABIC LETTER REH
	0x0632: 0xFEAF, // ARABIC LETTER ZAIN
	0x0633: 0xFEB3, // ARABIC LETTER SEEN
	0x0634: 0xFEB7, // ARABIC LETTER SHEEN
	0x0635: 0xFEBB, // ARABIC LETTER SAD
	0x0636: 0xFEBF, // ARABIC LETTER DAD
	0x0637: 0xFEC3, // ARABIC LETTER TAH
	0x0638: 0xFEC7, // ARABIC LETTER ZAH
	0x0639: 0xFECB, // ARABIC LETTER AIN
	0x063A: 0xFECF, // ARABIC LETTER GHAIN
	0x0641: 0xFED3, // ARABIC LETTER FEH
	0x0642: 0xFED7, // ARABIC LETTER QAF
	0x0643: 0xFEDB, // ARABIC LETTER KAF
	0x0644: 0xFEDF, // ARABIC LETTER LAM
	0x0645: 0xFEE3, // ARABIC LETTER MEEM
	0x0646: 0xFEE7, // ARABIC LETTER NOON
	0x0647: 0xFEEB, // ARABIC LETTER HEH
	0x0648: 0xFEED, // ARABIC LETTER WAW
	0x0649: 0xFEEF, // ARABIC LETTER ALEF MAKSURA
	0x064A: 0xFEF3, // ARABIC LETTER YEH
	0x0671: 0xFB50, // ARABIC LETTER ALEF WASLA
	0x0679: 0xFB68, // ARABIC LETTER TTEH
	0x067E: 0xFB58, // ARABIC LETTER PEH
	0x0686: 0xFB7C, // ARABIC LETTER TCHEH
	0x0688: 0xFB88, // ARABIC LETTER DDAL
	0x0691: 0xFB8C, // ARABIC LETTER RREH
	0x0698: 0xFB8A, // ARABIC LETTER JEH
	0x06A9: 0xFB90, // ARABIC LETTER KEHEH
	0x06AD: 0xFBD5, // ARABIC LETTER NG
	0x06AF: 0xFB94, // ARABIC LETTER GAF
	0x06BA: 0xFB9E, // ARABIC LETTER NOON GHUNNA
	0x06CC: 0xFBFE, // ARABIC LETTER FARSI YEH
	0x06D2: 0xFBAE, // ARABIC LETTER YEH BARREE
}

// Medial presentation form per general letter. Letters which never join
// forward carry their final form here.
var medialForm = map[rune]rune{
	0x0621: 0xFE80, // ARABIC LETTER HAMZA
	0x0627: 0xFE8E, // ARABIC LETTER ALEF
	0x0628: 0xFE92, // ARABIC LETTER BEH
	0x0629: 0xFE94, // ARABIC LETTER TEH MARBUTA
	0x062A: 0xFE98, // ARABIC LETTER TEH
	0x062B: 0xFE9C, // ARABIC LETTER THEH
	0x062C: 0xFEA0, // ARABIC LETTER JEEM
	0x062D: 0xFEA4, // ARABIC LETTER HAH
	0x062E: 0xFEA8, // ARABIC LETTER KHAH
	0x062F: 0xFEAA, // ARABIC LETTER DAL
	0x0630: 0xFEAC, // ARABIC LETTER THAL
	0x0631: 0xFEAE, // ARABIC LETTER REH
	0x0632: 0xFEB0, // ARABIC LETTER ZAIN
	0x0633: 0xFEB4, // ARABIC LETTER SEEN
	0x0634: 0xFEB8, // ARABIC LETTER SHEEN
	0x0635: 0xFEBC, // ARABIC LETTER SAD
	0x0636: 0xFEC0, // ARABIC LETTER DAD
	0x0637: 0xFEC4, // ARABIC LETTER TAH
	0x0638: 0xFEC8, // ARABIC LETTER ZAH
	0x0639: 0xFECC, // ARABIC LETTER AIN
	0x063A: 0xFED0, // ARABIC LETTER GHAIN
	0x0641: 0xFED4, // ARABIC LETTER FEH
	0x0642: 0xFED8, // ARABIC LETTER QAF
	0x0643: 0xFEDC, // ARABIC LETTER KAF
	0x0644: 0xFEE0, // ARABIC LETTER LAM
	0x0645: 0xFEE4, // ARABIC LETTER MEEM
	0x0646: 0xFEE8, // ARABIC LETTER NOON
	0x0647: 0xFEEC, // ARABIC LETTER HEH
	0x0648: 0xFEEE, // ARABIC LETTER WAW
	0x0649: 0xFEF0, // ARABIC LETTER ALEF MAKSURA
	0x064A: 0xFEF4, // ARABIC LETTER YEH
	0x0671: 0xFB51, // ARABIC LETTER ALEF WASLA
	0x0679: 0xFB69, // ARABIC LETTER TTEH
	0x067E: 0xFB59, // ARABIC LETTER PEH
	0x0686: 0xFB7D, // ARABIC LETTER TCHEH
	0x0688: 0xFB89, // ARABIC LETTER DDAL
	0x0691: 0xFB8D, // ARABIC LETTER RREH
	0x0698: 0xFB8B, // ARABIC LETTER JEH
	0x06A9: 0xFB91, // ARABIC LETTER KEHEH
	0x06AD: 0xFBD6, // ARABIC LETTER NG
	0x06AF: 0xFB95, // ARABIC LETTER GAF
	0x06BA: 0xFB9F, // ARABIC LETTER NOON GHUNNA
	0x06CC: 0xFBFF, // ARABIC LETTER FARSI YEH
	0x06D2: 0xFBAF, // ARABIC LETTER YEH BARREE
}

// Final presentation form per general letter.
var finalForm = map[rune]rune{
	0x0621: 0xFE80, // ARABIC LETTER HAMZA
	0x0627: 0xFE8E, // ARABIC LETTER ALEF
	0x0628: 0xFE90, // ARABIC LETTER BEH
	0x0629: 0xFE94, // ARABIC LETTER TEH MARBUTA
	0x062A: 0xFE96, // ARABIC LETTER TEH
	0x062B: 0xFE9A, // ARABIC LETTER THEH
	0x062C: 0xFE9E, // ARABIC LETTER JEEM
	0x062D: 0xFEA2, // ARABIC LETTER HAH
	0x062E: 0xFEA6, // ARABIC LETTER KHAH
	0x062F: 0xFEAA, // ARABIC LETTER DAL
	0x0630: 0xFEAC, // ARABIC LETTER THAL
	0x0631: 0xFEAE, // ARABIC LETTER REH
	0x0632: 0xFEB0, // ARABIC LETTER ZAIN
	0x0633: 0xFEB2, // ARABIC LETTER SEEN
	0x0634: 0xFEB6, // ARABIC LETTER SHEEN
	0x0635: 0xFEBA, // ARABIC LETTER SAD
	0x0636: 0xFEBE, // ARABIC LETTER DAD
	0x0637: 0xFEC2, // ARABIC LETTER TAH
	0x0638: 0xFEC6, // ARABIC LETTER ZAH
	0x0639: 0xFECA, // ARABIC LETTER AIN
	0x063A: 0xFECE, // ARABIC LETTER GHAIN
	0x0641: 0xFED2, // ARABIC LETTER FEH
	0x0642: 0xFED6, // ARABIC LETTER QAF
	0x0643: 0xFEDA, // ARABIC LETTER KAF
	0x0644: 0xFEDE, // ARABIC LETTER LAM
	0x0645: 0xFEE2, // ARABIC LETTER MEEM
	0x0646: 0xFEE6, // ARABIC LETTER NOON
	0x0647: 0xFEEA, // ARABIC LETTER HEH
	0x0648: 0xFEEE, // ARABIC LETTER WAW
	0x0649: 0xFEF0, // ARABIC LETTER ALEF MAKSURA
	0x064A: 0xFEF2, // ARABIC LETTER YEH
	0x0671: 0xFB51, // ARABIC LETTER ALEF WASLA
	0x0679: 0xFB67, // ARABIC LETTER TTEH
	0x067E: 0xFB57, // ARABIC LETTER PEH
	0x0686: 0xFB7B, // ARABIC LETTER TCHEH
	0x0688: 0xFB89, // ARABIC LETTER DDAL
	0x0691: 0xFB8D, // ARABIC LETTER RREH
	0x0698: 0xFB8B, // ARABIC LETTER JEH
	0x06A9: 0xFB8F, // ARABIC LETTER KEHEH
	0x06AD: 0xFBD4, // ARABIC LETTER NG
	0x06AF: 0xFB93, // ARABIC LETTER GAF
	0x06BA: 0xFB9F, // ARABIC LETTER NOON GHUNNA
	0x06CC: 0xFBFD, // ARABIC LETTER FARSI YEH
	0x06D2: 0xFBAF, // ARABIC LETTER YEH BARREE
}

// General letter(s) per presentation form. The reverse direction of the
// four positional tables; ligature glyphs map back to two letters.
var generalForm = map[rune]string{
	0xFB50: "\u0671", // ARABIC LETTER ALEF WASLA ISOLATED FORM
	0xFB51: "\u0671", // ARABIC LETTER ALEF WASLA FINAL FORM
	0xFB56: "\u067e", // ARABIC LETTER PEH ISOLATED FORM
	0xFB57: "\u067e", // ARABIC LETTER PEH FINAL FORM
	0xFB58: "\u067e", // ARABIC LETTER PEH INITIAL FORM
	0xFB59: "\u067e", // ARABIC LETTER PEH MEDIAL FORM
	0xFB66: "\u0679", // ARABIC LETTER TTEH ISOLATED FORM
	0xFB67: "\u0679", // ARABIC LETTER TTEH FINAL FORM
	0xFB68: "\u0679", // ARABIC LETTER TTEH INITIAL FORM
	0xFB69: "\u0679", // ARABIC LETTER TTEH MEDIAL FORM
	0xFB7A: "\u0686", // ARABIC LETTER TCHEH ISOLATED FORM
	0xFB7B: "\u0686", // ARABIC LETTER TCHEH FINAL FORM
	0xFB7C: "\u0686", // ARABIC LETTER TCHEH INITIAL FORM
	0xFB7D: "\u0686", // ARABIC LETTER TCHEH MEDIAL FORM
	0xFB88: "\u0688", // ARABIC LETTER DDAL ISOLATED FORM
	0xFB89: "\u0688", // ARABIC LETTER DDAL FINAL FORM
	0xFB8A: "\u0698", // ARABIC LETTER JEH ISOLATED FORM
	0xFB8B: "\u0698", // ARABIC LETTER JEH FINAL FORM
	0xFB8C: "\u0691", // ARABIC LETTER RREH ISOLATED FORM
	0xFB8D: "\u0691", // ARABIC LETTER RREH FINAL FORM
	0xFB8E: "\u06a9", // ARABIC LETTER KEHEH ISOLATED FORM
	0xFB8F: "\u06a9", // ARABIC LETTER KEHEH FINAL FORM
	0xFB90: "\u06a9", // ARABIC LETTER KEHEH INITIAL FORM
	0xFB91: "\u06a9", // ARABIC LETTER KEHEH MEDIAL FORM
	0xFB92: "\u06af", // ARABIC LETTER GAF ISOLATED FORM
	0xFB93: "\u06af", // ARABIC LETTER GAF FINAL FORM
	0xFB94: "\u06af", // ARABIC LETTER GAF INITIAL FORM
	0xFB95: "\u06af", // ARABIC LETTER GAF MEDIAL FORM
	0xFB9E: "\u06ba", // ARABIC LETTER NOON GHUNNA ISOLATED FORM
	0xFB9F: "\u06ba", // ARABIC LETTER NOON GHUNNA FINAL FORM
	0xFBAE: "\u06d2", // ARABIC LETTER YEH BARREE ISOLATED FORM
	0xFBAF: "\u06d2", // ARABIC LETTER YEH BARREE FINAL FORM
	0xFBD3: "\u06ad", // ARABIC LETTER NG ISOLATED FORM
	0xFBD4: "\u06ad", // ARABIC LETTER NG FINAL FORM
	0xFBD5: "\u06ad", // ARABIC LETTER NG INITIAL FORM
	0xFBD6: "\u06ad", // ARABIC LETTER NG MEDIAL FORM
	0xFBFC: "\u06cc", // ARABIC LETTER FARSI YEH ISOLATED FORM
	0xFBFD: "\u06cc", // ARABIC LETTER FARSI YEH FINAL FORM
	0xFBFE: "\u06cc", // ARABIC LETTER FARSI YEH INITIAL FORM
	0xFBFF: "\u06cc", // ARABIC LETTER FARSI YEH MEDIAL FORM
	0xFE80: "\u0621", // ARABIC LETTER HAMZA ISOLATED FORM
	0xFE81: "\u0622", // ARABIC LETTER ALEF WITH MADDA ABOVE ISOLATED FORM
	0xFE82: "\u0622", // ARABIC LETTER ALEF WITH MADDA ABOVE FINAL FORM
	0xFE8D: "\u0627", // ARABIC LETTER ALEF ISOLATED FORM
	0xFE8E: "\u0627", // ARABIC LETTER ALEF FINAL FORM
	0xFE8F: "\u0628", // ARABIC LETTER BEH ISOLATED FORM
	0xFE90: "\u0628", // ARABIC LETTER BEH FINAL FORM
	0xFE91: "\u0628", // ARABIC LETTER BEH INITIAL FORM
	0xFE92: "\u0628", // ARABIC LETTER BEH MEDIAL FORM
	0xFE93: "\u0629", // ARABIC LETTER TEH MARBUTA ISOLATED FORM
	0xFE94: "\u0629", // ARABIC LETTER TEH MARBUTA FINAL FORM
	0xFE95: "\u062a", // ARABIC LETTER TEH ISOLATED FORM
	0xFE96: "\u062a", // ARABIC LETTER TEH FINAL FORM
	0xFE97: "\u062a", // ARABIC LETTER TEH INITIAL FORM
	0xFE98: "\u062a", // ARABIC LETTER TEH MEDIAL FORM
	0xFE99: "\u062b", // ARABIC LETTER THEH ISOLATED FORM
	0xFE9A: "\u062b", // ARABIC LETTER THEH FINAL FORM
	0xFE9B: "\u062b", // ARABIC LETTER THEH INITIAL FORM
	0xFE9C: "\u062b", // ARABIC LETTER THEH MEDIAL FORM
	0xFE9D: "\u062c", // ARABIC LETTER JEEM ISOLATED FORM
	0xFE9E: "\u062c", // ARABIC LETTER JEEM FINAL FORM
	0xFE9F: "\u062c", // ARABIC LETTER JEEM INITIAL FORM
	0xFEA0: "\u062c", // ARABIC LETTER JEEM MEDIAL FORM
	0xFEA1: "\u062d", // ARABIC LETTER HAH ISOLATED FORM
	0xFEA2: "\u062d", // ARABIC LETTER HAH FINAL FORM
	0xFEA3: "\u062d", // ARABIC LETTER HAH INITIAL FORM
	0xFEA4: "\u062d", // ARABIC LETTER HAH MEDIAL FORM
	0xFEA5: "\u062e", // ARABIC LETTER KHAH ISOLATED FORM
	0xFEA6: "\u062e", // ARABIC LETTER KHAH FINAL FORM
	0xFEA7: "\u062e", // ARABIC LETTER KHAH INITIAL FORM
	0xFEA8: "\u062e", // ARABIC LETTER KHAH MEDIAL FORM
	0xFEA9: "\u062f", // ARABIC LETTER DAL ISOLATED FORM
	0xFEAA: "\u062f", // ARABIC LETTER DAL FINAL FORM
	0xFEAB: "\u0630", // ARABIC LETTER THAL ISOLATED FORM
	0xFEAC: "\u0630", // ARABIC LETTER THAL FINAL FORM
	0xFEAD: "\u0631", // ARABIC LETTER REH ISOLATED FORM
	0xFEAE: "\u0631", // ARABIC LETTER REH FINAL FORM
	0xFEAF: "\u0632", // ARABIC LETTER ZAIN ISOLATED FORM
	0xFEB0: "\u0632", // ARABIC LETTER ZAIN FINAL FORM
	0xFEB1: "\u0633", // ARABIC LETTER SEEN ISOLATED FORM
	0xFEB2: "\u0633", // ARABIC LETTER SEEN FINAL FORM
	0xFEB3: "\u0633", // ARABIC LETTER SEEN INITIAL FORM
	0xFEB4: "\u0633", // ARABIC LETTER SEEN MEDIAL FORM
	0xFEB5: "\u0634", // ARABIC LETTER SHEEN ISOLATED FORM
	0xFEB6: "\u0634", // ARABIC LETTER SHEEN FINAL FORM
	0xFEB7: "\u0634", // ARABIC LETTER SHEEN INITIAL FORM
	0xFEB8: "\u0634", // ARABIC LETTER SHEEN MEDIAL FORM
	0xFEB9: "\u0635", // ARABIC LETTER SAD ISOLATED FORM
	0xFEBA: "\u0635", // ARABIC LETTER SAD FINAL FORM
	0xFEBB: "\u0635", // ARABIC LETTER SAD INITIAL FORM
	0xFEBC: "\u0635", // ARABIC LETTER SAD MEDIAL FORM
	0xFEBD: "\u0636", // ARABIC LETTER DAD ISOLATED FORM
	0xFEBE: "\u0636", // ARABIC LETTER DAD FINAL FORM
	0xFEBF: "\u0636", // ARABIC LETTER DAD INITIAL FORM
	0xFEC0: "\u0636", // ARABIC LETTER DAD MEDIAL FORM
	0xFEC1: "\u0637", // ARABIC LETTER TAH ISOLATED FORM
	0xFEC2: "\u0637", // ARABIC LETTER TAH FINAL FORM
	0xFEC3: "\u0637", // ARABIC LETTER TAH INITIAL FORM
	0xFEC4: "\u0637", // ARABIC LETTER TAH MEDIAL FORM
	0xFEC5: "\u0638", // ARABIC LETTER ZAH ISOLATED FORM
	0xFEC6: "\u0638", // ARABIC LETTER ZAH FINAL FORM
	0xFEC7: "\u0638", // ARABIC LETTER ZAH INITIAL FORM
	0xFEC8: "\u0638", // ARABIC LETTER ZAH MEDIAL FORM
	0xFEC9: "\u0639", // ARABIC LETTER AIN ISOLATED FORM
	0xFECA: "\u0639", // ARABIC LETTER AIN FINAL FORM
	0xFECB: "\u0639", // ARABIC LETTER AIN INITIAL FORM
	0xFECC: "\u0639", // ARABIC LETTER AIN MEDIAL FORM
	0xFECD: "\u063a", // ARABIC LETTER GHAIN ISOLATED FORM
	0xFECE: "\u063a", // ARABIC LETTER GHAIN FINAL FORM
	0xFECF: "\u063a", // ARABIC LETTER GHAIN INITIAL FORM
	0xFED0: "\u063a", // ARABIC LETTER GHAIN MEDIAL FORM
	0xFED1: "\u0641", // ARABIC LETTER FEH ISOLATED FORM
	0xFED2: "\u0641", // ARABIC LETTER FEH FINAL FORM
	0xFED3: "\u0641", // ARABIC LETTER FEH INITIAL FORM
	0xFED4: "\u0641", // ARABIC LETTER FEH MEDIAL FORM
	0xFED5: "\u0642", // ARABIC LETTER QAF ISOLATED FORM
	0xFED6: "\u0642", // ARABIC LETTER QAF FINAL FORM
	0xFED7: "\u0642", // ARABIC LETTER QAF INITIAL FORM
	0xFED8: "\u0642", // ARABIC LETTER QAF MEDIAL FORM
	0xFED9: "\u0643", // ARABIC LETTER KAF ISOLATED FORM
	0xFEDA: "\u0643", // ARABIC LETTER KAF FINAL FORM
	0xFEDB: "\u0643", // ARABIC LETTER KAF INITIAL FORM
	0xFEDC: "\u0643", // ARABIC LETTER KAF MEDIAL FORM
	0xFEDD: "\u0644", // ARABIC LETTER LAM ISOLATED FORM
	0xFEDE: "\u0644", // ARABIC LETTER LAM FINAL FORM
	0xFEDF: "\u0644", // ARABIC LETTER LAM INITIAL FORM
	0xFEE0: "\u0644", // ARABIC LETTER LAM MEDIAL FORM
	0xFEE1: "\u0645", // ARABIC LETTER MEEM ISOLATED FORM
	0xFEE2: "\u0645", // ARABIC LETTER MEEM FINAL FORM
	0xFEE3: "\u0645", // ARABIC LETTER MEEM INITIAL FORM
	0xFEE4: "\u0645", // ARABIC LETTER MEEM MEDIAL FORM
	0xFEE5: "\u0646", // ARABIC LETTER NOON ISOLATED FORM
	0xFEE6: "\u0646", // ARABIC LETTER NOON FINAL FORM
	0xFEE7: "\u0646", // ARABIC LETTER NOON INITIAL FORM
	0xFEE8: "\u0646", // ARABIC LETTER NOON MEDIAL FORM
	0xFEE9: "\u0647", // ARABIC LETTER HEH ISOLATED FORM
	0xFEEA: "\u0647", // ARABIC LETTER HEH FINAL FORM
	0xFEEB: "\u0647", // ARABIC LETTER HEH INITIAL FORM
	0xFEEC: "\u0647", // ARABIC LETTER HEH MEDIAL FORM
	0xFEED: "\u0648", // ARABIC LETTER WAW ISOLATED FORM
	0xFEEE: "\u0648", // ARABIC LETTER WAW FINAL FORM
	0xFEEF: "\u0649", // ARABIC LETTER ALEF MAKSURA ISOLATED FORM
	0xFEF0: "\u0649", // ARABIC LETTER ALEF MAKSURA FINAL FORM
	0xFEF1: "\u064a", // ARABIC LETTER YEH ISOLATED FORM
	0xFEF2: "\u064a", // ARABIC LETTER YEH FINAL FORM
	0xFEF3: "\u064a", // ARABIC LETTER YEH INITIAL FORM
	0xFEF4: "\u064a", // ARABIC LETTER YEH MEDIAL FORM
	0xFEFB: "\u0644\u0627", // ARABIC LIGATURE LAM WITH ALEF ISOLATED FORM
	0xFEFC: "\u0644\u0627", // ARABIC LIGATURE LAM WITH ALEF FINAL FORM
}

// Presentation forms which only ever occur at the end of a word. Their
// occurrence directly before another letter glyph signals an elided word
// boundary.
var tailGlyphs = map[rune]bool{
	0xFB56: true, // ARABIC LETTER PEH ISOLATED FORM
	0xFB57: true, // ARABIC LETTER PEH FINAL FORM
	0xFB66: true, // ARABIC LETTER TTEH ISOLATED FORM
	0xFB67: true, // ARABIC LETTER TTEH FINAL FORM
	0xFB7A: true, // ARABIC LETTER TCHEH ISOLATED FORM
	0xFB7B: true, // ARABIC LETTER TCHEH FINAL FORM
	0xFB8E: true, // ARABIC LETTER KEHEH ISOLATED FORM
	0xFB8F: true, // ARABIC LETTER KEHEH FINAL FORM
	0xFB92: true, // ARABIC LETTER GAF ISOLATED FORM
	0xFB93: true, // ARABIC LETTER GAF FINAL FORM
	0xFB9E: true, // ARABIC LETTER NOON GHUNNA ISOLATED FORM
	0xFB9F: true, // ARABIC LETTER NOON GHUNNA FINAL FORM
	0xFBAE: true, // ARABIC LETTER YEH BARREE ISOLATED FORM
	0xFBAF: true, // ARABIC LETTER YEH BARREE FINAL FORM
	0xFBD3: true, // ARABIC LETTER NG ISOLATED FORM
	0xFBD4: true, // ARABIC LETTER NG FINAL FORM
	0xFBFC: true, // ARABIC LETTER FARSI YEH ISOLATED FORM
	0xFBFD: true, // ARABIC LETTER FARSI YEH FINAL FORM
	0xFE8F: true, // ARABIC LETTER BEH ISOLATED FORM
	0xFE90: true, // ARABIC LETTER BEH FINAL FORM
	0xFE93: true, // ARABIC LETTER TEH MARBUTA ISOLATED FORM
	0xFE94: true, // ARABIC LETTER TEH MARBUTA FINAL FORM
	0xFE95: true, // ARABIC LETTER TEH ISOLATED FORM
	0xFE96: true, // ARABIC LETTER TEH FINAL FORM
	0xFE99: true, // ARABIC LETTER THEH ISOLATED FORM
	0xFE9A: true, // ARABIC LETTER THEH FINAL FORM
	0xFE9D: true, // ARABIC LETTER JEEM ISOLATED FORM
	0xFE9E: true, // ARABIC LETTER JEEM FINAL FORM
	0xFEA1: true, // ARABIC LETTER HAH ISOLATED FORM
	0xFEA2: true, // ARABIC LETTER HAH FINAL FORM
	0xFEA5: true, // ARABIC LETTER KHAH ISOLATED FORM
	0xFEA6: true, // ARABIC LETTER KHAH FINAL FORM
	0xFEB1: true, // ARABIC LETTER SEEN ISOLATED FORM
	0xFEB2: true, // ARABIC LETTER SEEN FINAL FORM
	0xFEB5: true, // ARABIC LETTER SHEEN ISOLATED FORM
	0xFEB6: true, // ARABIC LETTER SHEEN FINAL FORM
	0xFEB9: true, // ARABIC LETTER SAD ISOLATED FORM
	0xFEBA: true, // ARABIC LETTER SAD FINAL FORM
	0xFEBD: true, // ARABIC LETTER DAD ISOLATED FORM
	0xFEBE: true, // ARABIC LETTER DAD FINAL FORM
	0xFEC9: true, // ARABIC LETTER AIN ISOLATED FORM
	0xFECA: true, // ARABIC LETTER AIN FINAL FORM
	0xFECD: true, // ARABIC LETTER GHAIN ISOLATED FORM
	0xFECE: true, // ARABIC LETTER GHAIN FINAL FORM
	0xFED1: true, // ARABIC LETTER FEH ISOLATED FORM
	0xFED2: true, // ARABIC LETTER FEH FINAL FORM
	0xFED5: true, // ARABIC LETTER QAF ISOLATED FORM
	0xFED6: true, // ARABIC LETTER QAF FINAL FORM
	0xFED9: true, // ARABIC LETTER KAF ISOLATED FORM
	0xFEDA: true, // ARABIC LETTER KAF FINAL FORM
	0xFEDD: true, // ARABIC LETTER LAM ISOLATED FORM
	0xFEDE: true, // ARABIC LETTER LAM FINAL FORM
	0xFEE1: true, // ARABIC LETTER MEEM ISOLATED FORM
	0xFEE2: true, // ARABIC LETTER MEEM FINAL FORM
	0xFEE5: true, // ARABIC LETTER NOON ISOLATED FORM
	0xFEE6: true, // ARABIC LETTER NOON FINAL FORM
	0xFEE9: true, // ARABIC LETTER HEH ISOLATED FORM
	0xFEEA: true, // ARABIC LETTER HEH FINAL FORM
	0xFEEF: true, // ARABIC LETTER ALEF MAKSURA ISOLATED FORM
	0xFEF0: true, // ARABIC LETTER ALEF MAKSURA FINAL FORM
	0xFEF1: true, // ARABIC LETTER YEH ISOLATED FORM
	0xFEF2: true, // ARABIC LETTER YEH FINAL FORM
}
