package analysis

import (
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// inputs is an open pair of R1/R2 files.
type inputs struct {
	f1, f2 file.File
	r1, r2 io.Reader
}

// openInputs opens r1Path and r2Path. Files whose name carries a
// compression suffix (e.g. ".gz") are decompressed.
func openInputs(ctx context.Context, r1Path, r2Path string) (*inputs, error) {
	f1, err := file.Open(ctx, r1Path)
	if err != nil {
		return nil, errors.E(err, "open", r1Path)
	}
	f2, err := file.Open(ctx, r2Path)
	if err != nil {
		_ = f1.Close(ctx)
		return nil, errors.E(err, "open", r2Path)
	}
	return &inputs{f1: f1, f2: f2, r1: reader(ctx, f1), r2: reader(ctx, f2)}, nil
}

func reader(ctx context.Context, f file.File) io.Reader {
	r := io.Reader(f.Reader(ctx))
	if u := compress.NewReaderPath(r, f.Name()); u != nil {
		return u
	}
	return r
}

// close closes both files, reporting err if non-nil and otherwise the
// first close error.
func (in *inputs) close(ctx context.Context, err error) error {
	once := errors.Once{}
	once.Set(err)
	once.Set(in.f1.Close(ctx))
	once.Set(in.f2.Close(ctx))
	return once.Err()
}
