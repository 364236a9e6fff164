package featio

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	acsf "github.com/rmera/goacsf"
)

const (
	lzwLitwidth int = 8
)

//Write!
type FeatW struct {
	f          *os.File
	h          io.WriteCloser
	rows       int
	width      int
	filename   string
	writeable  bool
	linebuffer []byte
	prec       int
}

func (S *FeatW) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
	return
}

//Rows returns the number of atom rows in each frame of the file.
func (S *FeatW) Rows() int {
	return S.rows
}

//Width returns the number of features per atom row in each frame of the file.
func (S *FeatW) Width() int {
	return S.width
}

//WNext writes the contents of b as the next frame of the file. The
//whole buffer is written, padding rows included, so every frame has
//the same size. The frame terminator records how many of the rows
//belong to real atoms.
func (S *FeatW) WNext(b *acsf.Buffer) error {
	if !S.writeable {
		return Error{FileUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if b == nil {
		return Error{NilBuffer, S.filename, []string{"WNext"}, true}
	}
	if b.Rows() != S.rows || b.Width() != S.width {
		return Error{fmt.Sprintf("%dx%d buffer given, but %dx%d expected", b.Rows(), b.Width(), S.rows, S.width), S.filename, []string{"WNext"}, true}
	}
	for i := 0; i < S.rows; i++ {
		S.linebuffer = rowEncode(b.Row(i), S.linebuffer, S.prec)
		S.h.Write(S.linebuffer)
	}
	S.h.Write([]byte(fmt.Sprintf("* %d\n", b.NAtoms())))
	return nil
}

//NewWriter opens a feature file called name for writing, and returns a handle to
//it. Each frame written to the file must be a rows x width buffer. Only the first
//map given will be written as the file's metadata. The compression format is
//decided from the last letter of the file's name, zstd being the default.
func NewWriter(name string, rows, width int, header map[string]string, compressionLevel ...int) (*FeatW, error) {
	var level int = flate.BestCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	if rows <= 0 || width <= 0 {
		return nil, Error{fmt.Sprintf("Nonsensical frame dimensions %dx%d", rows, width), name, []string{"NewWriter"}, true}
	}
	S := new(FeatW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(name)[len(name)-1]
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		r, err := flate.NewWriter(a, level)
		return r, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}

	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch format {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'f':
		AnyNewWriter = zstdwriter
	case 'z':
		AnyNewWriter = gzipwriter
	case 's':
		AnyNewWriter = zstdwriter
	case 'r':
		AnyNewWriter = zwriter

	default:
		AnyNewWriter = zstdwriter

	}

	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		return nil, Error{"Can't create the compressor " + err.Error(), S.filename, []string{"NewWriter"}, true}

	}
	S.rows = rows
	S.width = width
	S.filename = name
	S.writeable = true
	S.prec = -1 //full precision, the default
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err == nil {
				S.prec = prec
			} else {
				log.Printf("Invalid precision for feature file %s. Will use the default", S.filename)
			}
		}
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%v\n", k, v)
		}
		S.h.Write([]byte(headerstr))
	}
	S.h.Write([]byte(fmt.Sprintf("** %d %d\n", S.rows, S.width)))
	return S, nil
}

//Read!
type FeatR struct {
	f            *os.File
	zr           io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	scratch      []float64
	rows         int
	width        int
	filename     string
	readable     bool
}

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func() //The things I have to do xD
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//rowEncode formats a feature row as space-separated decimal numbers,
//reusing buf's backing array when it is large enough. prec is the
//number of significant digits, -1 meaning the shortest string that
//parses back to the exact same float64.
func rowEncode(row []float64, buf []byte, prec int) []byte {
	buf = buf[:0]
	for i, v := range row {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, v, 'g', prec, 64)
	}
	buf = append(buf, '\n')
	return buf
}

func rowDecode(str string, dest []float64) error {
	s := strings.Fields(str)
	if len(s) < len(dest) {
		return fmt.Errorf("Ill formated feature line: Too few fields: %s", str)
	}
	if len(s) > len(dest) {
		return fmt.Errorf("Ill formated feature line: Too many fields: %s", str)
	}
	for i, v := range s {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("Can't parse feature %d (%s). Error: %s", i, v, err.Error())
		}
		dest[i] = f
	}
	return nil
}

//New opens a feature file for reading, and returns a pointer to the
//handle, a map with the metadata (or nil, if no metadata is found)
//and error or nil.
func New(name string) (*FeatR, map[string]string, error) {
	S := new(FeatR)
	S.rows = -1 //just so we know if things don't work
	S.width = -1
	var m map[string]string
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, err
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		r := flate.NewReader(a)
		return r, nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		var ql *stdql
		ql = &stdql{r.Close, r}

		return ql, err

	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'f':
		AnyNewReader = zstdreader
	case 'z':
		AnyNewReader = gzreader
	case 's':
		AnyNewReader = zstdreader
	case 'r':
		AnyNewReader = zreader

	default:
		AnyNewReader = zstdreader

	}

	S.intermediate = bufio.NewReader(S.f)
	S.zr, err = AnyNewReader(S.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"NewFeatR"}, true}
	}
	S.h = bufio.NewReader(S.zr)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"NewFeatR"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.Contains(str, "**") {
			dims := strings.Fields(str)
			if len(dims) < 3 {
				return nil, nil, Error{fmt.Sprintf("Can't read frame dimensions from '%s'", str), S.filename, []string{"NewFeatR"}, true}
			}
			S.rows, err = strconv.Atoi(dims[1])
			if err == nil {
				S.width, err = strconv.Atoi(dims[2])
			}
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read frame dimensions from '%s': %s", str, err.Error()), S.filename, []string{"NewFeatR"}, true}
			}
			break
		}
		kv := strings.Split(str, "=")
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, S.filename, []string{"NewFeatR"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	if S.rows <= 0 || S.width <= 0 {
		return nil, nil, Error{fmt.Sprintf("Nonsensical frame dimensions %dx%d", S.rows, S.width), S.filename, []string{"NewFeatR"}, true}
	}
	S.scratch = make([]float64, S.width)
	S.readable = true
	return S, m, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *FeatR) Readable() bool {
	return S.readable
}

//Next puts in the given buffer the feature values for the next frame of
//the file, and records in it the number of rows that belong to real atoms.
//A nil buffer causes the frame to be read and checked, but discarded.
//If the error implements acsf.LastFrameError, the end of the
//file has been reached, not an actual error.
func (S *FeatR) Next(b *acsf.Buffer) error {
	if !S.readable {
		return Error{FileUnIniRead, S.filename, []string{"Next"}, true}
	}
	if b != nil && (b.Rows() != S.rows || b.Width() != S.width) {
		return Error{fmt.Sprintf("%dx%d buffer given, but %dx%d expected", b.Rows(), b.Width(), S.rows, S.width), S.filename, []string{"Next"}, true}
	}
	for i := 0; i < S.rows; i++ {
		bts, err := S.h.ReadBytes('\n')
		if err != nil {
			// EOF should only happen when reading the first row
			if errors.Is(err, io.EOF) && i == 0 && len(bts) == 0 {
				//nothing bad happened here, the file just ended.
				S.Close()
				return newlastFrameError(S.filename, "Next")
			} else {
				return Error{message: err.Error(), filename: S.filename, critical: true}
			}

		}
		dest := S.scratch
		if b != nil {
			dest = b.Row(i)
		}
		//if b is nil we ignore this whole frame, reading the content but
		//not saving it. Note that we still check the frame for correctness.
		err = rowDecode(string(bts[:len(bts)-1]), dest)
		if err != nil {
			return Error{message: err.Error(), filename: S.filename, critical: true}
		}
	}
	s, err := S.h.ReadString('\n')
	if err != nil {
		return Error{"Can't read the frame termination mark: " + err.Error(), S.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{"Wrong number of rows in frame: " + s, S.filename, []string{"Next"}, true}
	}
	if b != nil {
		natoms := S.rows
		fields := strings.Fields(strings.TrimSpace(s))
		if len(fields) >= 2 {
			n, errn := strconv.Atoi(fields[1])
			if errn != nil {
				log.Printf("Frame in feature file %s lacks a (correct) atom count: %s", S.filename, s) //just a heads-up
			} else {
				natoms = n
			}
		}
		if err := b.SetNAtoms(natoms); err != nil {
			return errDecorate(err, "Next")
		}
	}
	return nil
}

//Close closes the object, and marks it as unreadable
func (S *FeatR) Close() {
	if !S.readable {
		return
	}
	S.zr.Close()
	S.f.Close()
	S.readable = false
	return
}

//Rows returns the number of atom rows in each frame of the file.
func (S *FeatR) Rows() int {
	return S.rows
}

//Width returns the number of features per atom row in each frame of the file.
func (S *FeatR) Width() int {
	return S.width
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements acsf.Error and decorates the error with the caller's name before returning it.
//if used with a non-acsf.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(acsf.Error) //I know that is the type returned by the functions in this package
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for feature file errors. It fullfills acsf.Error and acsf.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ftf file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.

	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing handle was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "ftf") associated to the error
func (err Error) Format() string { return "ftf" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	FileUnIniRead  = "Feature file uninitialized to read"
	FileUnIniWrite = "Feature file uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	NilBuffer      = "Given nil buffer"
	WrongFormat    = "Wrong format in the feature file or frame"
	EOF            = "EOF"
)

//lastFrameError implements acsf.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "ftf" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
