/*
Package arabic deals with the positional letter forms of Arabic script.

Description

Arabic letters have up to four different shapes, depending on their
position within a letter block: initial, medial, final and isolated.
(Letter blocks are runs of one or more connected letters. Some words
consist of a single letter block, others of more than one, as letters
like alef or dal never connect to a following letter.)

Unicode contains separate code points for each positional variant of a
letter, located in the Arabic Presentation Forms blocks. Ordinary text
carries the general (position-independent) letter forms only and leaves
shaping to the rendering engine. Some text-processing pipelines, however,
have to work on glyph-shaped text directly (OCR ground-truth preparation
being the prominent one): either producing it from logical text, or
recovering logical text from it.

Package arabic and its sub-packages implement both directions of this
conversion:

▪︎ shape.Contextualize turns general letter forms into positional
presentation forms.

▪︎ shape.Decontextualize turns presentation forms back into general
forms, re-inserting word boundaries which the glyph forms do not encode.

The root package holds the classification of code points which drives
letter-block segmentation. Sub-package shape contains the conversion
algorithms and the per-letter form tables, sub-package normalize the
canonical (de-)composition steps wrapped around them.

Attention

Before classifying code points, clients will have to initialize the
range tables:

  SetupLetterClasses()

This is concurrency-safe and will be called automatically by the
conversion functions in sub-package shape.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arabic
