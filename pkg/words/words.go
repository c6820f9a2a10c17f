// Package words lists the reserved words of LilyPond: keywords, commands,
// context names and the variables of the output blocks.
package words

import "slices"

// Keywords are the LilyPond keywords written after a backslash.
var Keywords = []string{
	"accepts", "alias", "consists", "defaultchild", "denies", "include", "name",
	"once", "remove", "version", "score", "book", "bookpart", "header", "paper",
	"midi", "layout", "with", "context",
}

// MusicCommands are the music functions and shorthands of LilyPond.
var MusicCommands = []string{
	"accent", "accentus", "acciaccatura", "addInstrumentDefinition",
	"addlyrics", "addQuote", "afterGrace", "afterGraceFraction", "aikenHeads",
	"allowPageTurn", "alternative", "AncientRemoveEmptyStaffContext",
	"applyContext", "applyMusic", "applyOutput", "appoggiatura", "arpeggio",
	"arpeggioArrowDown", "arpeggioArrowUp", "arpeggioBracket", "arpeggioNormal",
	"arpeggioParenthesis", "ascendens", "auctum", "augmentum",
	"autoAccidentals", "autoBeamOff", "autoBeamOn", "autochange",
	"balloonGrobText", "balloonLengthOff", "balloonLengthOn", "balloonText",
	"bar", "barNumberCheck", "bassFigureExtendersOff", "bassFigureExtendersOn",
	"bassFigureStaffAlignmentDown", "bassFigureStaffAlignmentNeutral",
	"bassFigureStaffAlignmentUp", "bendAfter", "blackTriangleMarkup",
	"bracketCloseSymbol", "bracketOpenSymbol", "break", "breathe", "breve",
	"cadenzaOff", "cadenzaOn", "caesura", "cavum", "change", "chordmode",
	"chordNameSeparator", "chordPrefixSpacer", "chordRootNamer", "chords",
	"circulus", "clef", "cm", "coda", "compressFullBarRests", "context", "cr",
	"cresc", "crescHairpin", "crescTextCresc", "cueDuring", "dashBar",
	"dashDash", "dashDot", "dashHat", "dashLarger", "dashPlus",
	"dashUnderscore", "decr", "default", "defaultTimeSignature", "deminutum",
	"denies", "descendens", "dim", "dimHairpin", "dimTextDecr",
	"dimTextDecresc", "dimTextDim", "displayLilyMusic", "displayMusic",
	"divisioMaior", "divisioMaxima", "divisioMinima", "dotsDown", "dotsNeutral",
	"dotsUp", "downbow", "downmordent", "downprall", "drummode",
	"drumPitchTable", "drums", "dynamicDown", "dynamicNeutral", "dynamicUp",
	"easyHeadsOff", "easyHeadsOn", "endcr", "endcresc", "enddecr", "enddim",
	"endincipit", "endSpanners", "episemFinis", "episemInitium",
	"escapedBiggerSymbol", "escapedExclamationSymbol",
	"escapedParenthesisCloseSymbol", "escapedParenthesisOpenSymbol",
	"escapedSmallerSymbol", "espressivo", "expandFullBarRests", "f",
	"featherDurations", "fermata", "fermataMarkup", "ff", "fff", "ffff",
	"figuremode", "figures", "finalis", "fingeringOrientations", "flageolet",
	"flexa", "fp", "frenchChords", "fullJazzExceptions", "fz", "germanChords",
	"glissando", "grace", "graceSettings", "harmonic", "hideNotes",
	"hideStaffSwitch", "huge", "ictus", "ignatzekExceptionMusic",
	"ignatzekExceptions", "iij", "IIJ", "ij", "IJ", "improvisationOff",
	"improvisationOn", "in", "inclinatum", "includePageLayoutFile", "indent",
	"instrumentSwitch", "instrumentTransposition", "interscoreline",
	"italianChords", "keepWithTag", "key", "killCues", "label", "laissezVibrer",
	"large", "lheel", "ligature", "linea", "lineprall", "longa", "longfermata",
	"ltoe", "lyricmode", "lyrics", "lyricsto", "maininput", "majorSevenSymbol",
	"makeClusters", "marcato", "mark", "markup", "markuplines", "maxima",
	"melisma", "melismaEnd", "mergeDifferentlyDottedOff",
	"mergeDifferentlyDottedOn", "mergeDifferentlyHeadedOff",
	"mergeDifferentlyHeadedOn", "mf", "mm", "mordent", "mp", "musicMap",
	"neumeDemoLayout", "new", "newSpacingSection", "noBeam", "noBreak",
	"noPageBreak", "noPageTurn", "normalsize", "notemode",
	"numericTimeSignature", "octaveCheck", "oldaddlyrics", "oneVoice", "open",
	"oriscus", "ottava", "override", "overrideProperty", "p", "pageBreak",
	"pageTurn", "parallelMusic", "parenthesisCloseSymbol",
	"parenthesisOpenSymbol", "parenthesize", "partcombine",
	"partCombineListener", "partial", "partialJazzExceptions",
	"partialJazzMusic", "pes", "phrasingSlurDashed", "phrasingSlurDotted",
	"phrasingSlurDown", "phrasingSlurNeutral", "phrasingSlurSolid",
	"phrasingSlurUp", "pipeSymbol", "pitchedTrill", "pointAndClickOff",
	"pointAndClickOn", "portato", "pp", "ppp", "pppp", "ppppp", "prall",
	"pralldown", "prallmordent", "prallprall", "prallup",
	"predefinedFretboardsOff", "predefinedFretboardsOn", "pt", "quilisma",
	"quoteDuring", "relative", "RemoveEmptyRhythmicStaffContext",
	"RemoveEmptyStaffContext", "removeWithTag", "repeat", "repeatTie",
	"resetRelativeOctave", "responsum", "rest", "reverseturn", "revert", "rfz",
	"rheel", "rightHandFinger", "rtoe", "sacredHarpHeads", "scaleDurations",
	"scoreTweak", "segno", "semicirculus", "semiGermanChords", "set", "sf",
	"sff", "sfp", "sfz", "shiftDurations", "shiftOff", "shiftOn", "shiftOnn",
	"shiftOnnn", "shortfermata", "showStaffSwitch", "signumcongruentiae",
	"skip", "skipTypesetting", "slurDashed", "slurDotted", "slurDown",
	"slurNeutral", "slurSolid", "slurUp", "small", "sostenutoOff",
	"sostenutoOn", "sp", "spacingTweaks", "spp", "staccatissimo", "staccato",
	"startAcciaccaturaMusic", "startAppoggiaturaMusic", "startGraceMusic",
	"startGroup", "startStaff", "startTextSpan", "startTrillSpan", "stemDown",
	"stemNeutral", "stemUp", "stopAcciaccaturaMusic", "stopAppoggiaturaMusic",
	"stopGraceMusic", "stopGroup", "stopped", "stopStaff", "stopTextSpan",
	"stopTrillSpan", "strokeFingerOrientations", "stropha", "sustainOff",
	"sustainOn", "tag", "teeny", "tempo", "tempoWholesPerMinute", "tenuto",
	"textLengthOff", "textLengthOn", "textSpannerDown", "textSpannerNeutral",
	"textSpannerUp", "thumb", "tieDashed", "tieDotted", "tieDown", "tieNeutral",
	"tieSolid", "tieUp", "tildeSymbol", "time", "times", "timing", "tiny",
	"transpose", "transposedCueDuring", "transposition", "treCorde", "trill",
	"tupletDown", "tupletNeutral", "tupletUp", "turn", "tweak", "unaCorda",
	"unfoldRepeats", "unHideNotes", "unit", "unset", "upbow", "upmordent",
	"upprall", "varcoda", "versus", "verylongfermata", "virga", "virgula",
	"voiceFour", "voiceFourStyle", "voiceNeutralStyle", "voiceOne",
	"voiceOneStyle", "voiceThree", "voiceThreeStyle", "voiceTwo",
	"voiceTwoStyle", "whiteTriangleMarkup", "withMusicProperty",
	"fixed", "language", "tuplet", "omit", "hide", "compressMMRests",
}

// Modes are the modes \key accepts.
var Modes = []string{
	"major", "minor", "ionian", "dorian", "phrygian", "lydian", "mixolydian",
	"aeolian", "locrian",
}

// MarkupCommands are the commands usable inside \markup.
var MarkupCommands = []string{
	"arrow-head", "backslashed-digit", "beam", "char", "doubleflat",
	"doublesharp", "draw-circle", "draw-line", "epsfile", "filled-box", "flat",
	"fret-diagram", "fret-diagram-terse", "fret-diagram-verbose",
	"fromproperty", "harp-pedal", "justify-field", "justify-string", "lookup",
	"markalphabet", "markletter", "musicglyph", "natural", "note",
	"note-by-number", "null", "semiflat", "semisharp", "sesquiflat",
	"sesquisharp", "sharp", "simple", "slashed-digit", "stencil", "strut",
	"tied-lyric", "triangle", "verbatim-file", "wordwrap-field",
	"wordwrap-string", "abs-fontsize", "bold", "box", "bracket", "caps",
	"center-align", "center-column", "circle", "column", "combine", "concat",
	"dir-column", "dynamic", "fill-line", "finger", "fontCaps", "fontsize",
	"fraction", "general-align", "halign", "hbracket", "hcenter", "hcenter-in",
	"hspace", "huge", "italic", "justify", "large", "larger", "left-align",
	"left-column", "line", "lower", "magnify", "markup", "markuplines",
	"medium", "normalsize", "normal-size-sub", "normal-size-super",
	"normal-text", "number", "on-the-fly", "override", "pad-around",
	"pad-markup", "pad-to-box", "pad-x", "page-ref", "postscript",
	"put-adjacent", "raise", "right-align", "right-column", "roman", "rotate",
	"rounded-box", "sans", "small", "smallCaps", "smaller", "sub", "super",
	"teeny", "text", "tiny", "translate", "translate-scaled", "transparent",
	"typewriter", "underline", "upright", "vcenter", "whiteout", "with-color",
	"with-dimensions", "with-url", "wordwrap",
}

// MarkupListCommands are the commands usable inside \markuplist.
var MarkupListCommands = []string{
	"column-lines", "justified-lines", "override-lines", "wordwrap-internal",
	"wordwrap-lines", "wordwrap-string-internal",
}

// Contexts are the context names for \new and \context.
var Contexts = []string{
	"ChoirStaff", "ChordNames", "CueVoice", "Devnull", "DrumStaff", "DrumVoice",
	"FiguredBass", "FretBoards", "Global", "GrandStaff",
	"GregorianTranscriptionStaff", "GregorianTranscriptionVoice", "Lyrics",
	"MensuralStaff", "MensuralVoice", "NoteNames", "PianoStaff",
	"RhythmicStaff", "Score", "Staff", "StaffGroup", "TabStaff", "TabVoice",
	"VaticanaStaff", "VaticanaVoice", "Voice",
}

var HeaderVariables = []string{
	"dedication", "title", "subtitle", "subsubtitle", "poet", "composer",
	"meter", "opus", "arranger", "instrument", "piece", "breakbefore",
	"copyright", "tagline", "mutopiatitle", "mutopiacomposer", "mutopiapoet",
	"mutopiaopus", "mutopiainstrument", "date", "enteredby", "source", "style",
	"maintainer", "maintainerEmail", "maintainerWeb", "moreInfo", "lastupdated",
	"texidoc", "footer",
}

var PaperVariables = []string{
	"after-title-space", "annotate-spacing", "before-title-space",
	"between-system-padding", "between-system-space", "between-title-space",
	"blank-after-score-page-force", "blank-last-page-force", "blank-page-force",
	"bottom-margin", "first-page-number", "foot-separation", "force-assignment",
	"head-separation", "horizontal-shift", "indent", "input-encoding",
	"left-margin", "line-width", "output-scale",
	"page-breaking-between-system-padding", "page-count",
	"page-limit-inter-system-space", "page-limit-inter-system-space-factor",
	"page-top-space", "paper-height", "paper-width", "print-all-headers",
	"print-first-page-number", "print-page-number", "ragged-bottom",
	"ragged-last", "ragged-last-bottom", "ragged-right", "right-margin",
	"system-separator-markup", "top-margin", "bookTitleMarkup",
	"evenFooterMarkup", "evenHeaderMarkup", "oddFooterMarkup",
	"oddHeaderMarkup", "scoreTitleMarkup", "tocItemMarkup", "tocTitleMarkup",
}

var LayoutVariables = []string{
	"indent", "short-indent", "system-count",
}

// Clefs are the clef names \clef accepts.
var Clefs = []string{
	"treble", "violin", "G", "alto", "C", "tenor", "bass", "subbass", "F",
	"french", "mezzosoprano", "soprano", "varbaritone", "baritone",
	"percussion", "tab", "treble_8", "bass_8",
}

var RepeatTypes = []string{
	"unfold", "percent", "volta", "tremolo",
}

// MidiInstruments are the General MIDI names midiInstrument accepts.
var MidiInstruments = []string{
	"acoustic grand", "bright acoustic", "electric grand", "honky-tonk",
	"electric piano 1", "electric piano 2", "harpsichord", "clav", "celesta",
	"glockenspiel", "music box", "vibraphone", "marimba", "xylophone",
	"tubular bells", "dulcimer", "drawbar organ", "percussive organ",
	"rock organ", "church organ", "reed organ", "accordion", "harmonica",
	"concertina", "acoustic guitar (nylon)", "acoustic guitar (steel)",
	"electric guitar (jazz)", "electric guitar (clean)",
	"electric guitar (muted)", "overdriven guitar", "distorted guitar",
	"guitar harmonics", "acoustic bass", "electric bass (finger)",
	"electric bass (pick)", "fretless bass", "slap bass 1", "slap bass 2",
	"synth bass 1", "synth bass 2", "violin", "viola", "cello", "contrabass",
	"tremolo strings", "pizzicato strings", "orchestral strings", "timpani",
	"string ensemble 1", "string ensemble 2", "synthstrings 1",
	"synthstrings 2", "choir aahs", "voice oohs", "synth voice",
	"orchestra hit", "trumpet", "trombone", "tuba", "muted trumpet",
	"french horn", "brass section", "synthbrass 1", "synthbrass 2",
	"soprano sax", "alto sax", "tenor sax", "baritone sax", "oboe",
	"english horn", "bassoon", "clarinet", "piccolo", "flute", "recorder",
	"pan flute", "blown bottle", "shakuhachi", "whistle", "ocarina",
	"lead 1 (square)", "lead 2 (sawtooth)", "lead 3 (calliope)",
	"lead 4 (chiff)", "lead 5 (charang)", "lead 6 (voice)", "lead 7 (fifths)",
	"lead 8 (bass+lead)", "pad 1 (new age)", "pad 2 (warm)",
	"pad 3 (polysynth)", "pad 4 (choir)", "pad 5 (bowed)", "pad 6 (metallic)",
	"pad 7 (halo)", "pad 8 (sweep)", "fx 1 (rain)", "fx 2 (soundtrack)",
	"fx 3 (crystal)", "fx 4 (atmosphere)", "fx 5 (brightness)",
	"fx 6 (goblins)", "fx 7 (echoes)", "fx 8 (sci-fi)", "sitar", "banjo",
	"shamisen", "koto", "kalimba", "bagpipe", "fiddle", "shanai", "tinkle bell",
	"agogo", "steel drums", "woodblock", "taiko drum", "melodic tom",
	"synth drum", "reverse cymbal", "guitar fret noise", "breath noise",
	"seashore", "bird tweet", "telephone ring", "helicopter", "applause",
	"gunshot", "standard kit", "standard drums", "drums", "room kit",
	"room drums", "power kit", "power drums", "rock drums", "electronic kit",
	"electronic drums", "tr-808 kit", "tr-808 drums", "jazz kit", "jazz drums",
	"brush kit", "brush drums", "orchestra kit", "orchestra drums",
	"classical drums", "sfx kit", "sfx drums", "mt-32 kit", "mt-32 drums",
	"cm-64 kit", "cm-64 drums",
}

// Is reports whether word is in list.
func Is(list []string, word string) bool {
	return slices.Contains(list, word)
}
