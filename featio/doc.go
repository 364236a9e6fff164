/*
 * doc.go, part of goacsf.
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//package featio implements the feature text format (ftf), an internal format for
//sequences of symmetry-function descriptor frames. ftf aims to produce reasonably
//small files and to be very easy to read and write, so readers/writers can be
//easily implemented in other programing languages / for other libraries or
//programs, say, to feed the descriptors to a neural-network framework.

/******************** Format Specification   ***************************************************

An FTF file has the extension ftf, and it is compressed with z-standard (zstd).

An FTF file may only contain ASCII symbols.

An FTF file has a "header" starting in the first line, and ending with a line that
starts with the characters "**" followed by one or more spaces, the number of atom
rows per frame, one or more spaces, and the number of features per row.

Each line of the header before the "**" line must be a pair key=value. The writer
in this package stores whatever metadata it is given, and the reader returns it
without interpreting it, except for the key "prec": if present, its value must be
an integer, the number of significant digits used when writing each feature. If
absent, features are written with the shortest decimal string that parses back to
the exact same 64-bit floating point number, so a write/read cycle is lossless.

After the header, the file has one line per atom row, per frame, padding rows
included, so every frame has exactly the same number of lines. Each line contains
the features of that row as decimal numbers separated by single spaces, and
nothing more.

Each frame ends with a line starting with the character "*" (no whitespaces
before), optionally followed by one or more whitespaces and an integer: the number
of leading rows in the frame that describe real atoms rather than padding. If the
number is absent, readers must assume every row is a real atom.

The "**" sequence may only be used as a header termination, as described above,
and can not appear anywhere else in the file.

As for compression, the last letter of the file name selects the scheme, so files
can be re-compressed with a different tradeoff without changing the format: 'l'
for LZW, 'z' for gzip, 'r' for DEFLATE, and 's', 'f' or anything else for the
z-standard default.

***************************************************************************************************/

package featio
