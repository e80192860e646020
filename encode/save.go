package encode

import (
	"context"
	"os"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// Save encodes r with enc and writes the result to path.  The raster is
// encoded fully into memory first, so an encoder failure leaves no file at
// all; a write failure removes the partial file before returning.
func Save(ctx context.Context, enc core.Encoder, r *core.Raster, path string, opts core.Options) error {
	data, err := enc.Encode(ctx, r, opts)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return apperrors.Wrap(apperrors.CategoryEncode, "save.open", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return apperrors.Wrap(apperrors.CategoryEncode, "save.write", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return apperrors.Wrap(apperrors.CategoryEncode, "save.close", err)
	}
	return nil
}
