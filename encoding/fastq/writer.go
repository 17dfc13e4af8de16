package fastq

import "io"

var (
	newline   = []byte{'\n'}
	separator = "+"
)

// Writer is a FASTQ file writer.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a new FASTQ writer
// that writes reads to the underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the read r in FASTQ format. The separator line is always
// "+". An error is returned if the write failed or if r holds a quality
// value that cannot be encoded; the error is sticky.
func (w *Writer) Write(r *Read) error {
	if w.err != nil {
		return w.err
	}
	qual, err := EncodeQual(r.Qual)
	if err != nil {
		w.err = err
		return err
	}
	w.writeln(r.ID)
	w.writeln(r.Seq)
	w.writeln(separator)
	w.writeln(qual)
	return w.err
}

// WritePair writes p.R1 to w1 and p.R2 to w2.
func WritePair(w1, w2 *Writer, p *Pair) error {
	if err := w1.Write(&p.R1); err != nil {
		return err
	}
	return w2.Write(&p.R2)
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
