// Command press-bench round-trips a corpus through every codec family
// and reports sizes and timings.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/go-faster/press"
	"github.com/go-faster/press/brotli"
	"github.com/go-faster/press/deflate"
	"github.com/go-faster/press/gzip"
	"github.com/go-faster/press/internal/cmd/app"
	"github.com/go-faster/press/internal/version"
	"github.com/go-faster/press/lz4"
	"github.com/go-faster/press/snappy"
	"github.com/go-faster/press/zstd"
)

type ops struct {
	compress   func(press.Data, ...press.Option) (press.Data, error)
	decompress func(press.Data, ...press.Option) (press.Data, error)
}

var families = map[press.Method]ops{
	press.Snappy:  {snappy.Compress, snappy.Decompress},
	press.Brotli:  {brotli.Compress, brotli.Decompress},
	press.Deflate: {deflate.Compress, deflate.Decompress},
	press.Gzip:    {gzip.Compress, gzip.Decompress},
	press.LZ4:     {lz4.Compress, lz4.Decompress},
	press.Zstd:    {zstd.Compress, zstd.Decompress},
}

func run(ctx context.Context, lg *zap.Logger) error {
	var arg struct {
		File    string
		Repeat  int
		Level   int
		Version bool
	}
	flag.StringVar(&arg.File, "f", "", "input file (default: generated corpus)")
	flag.IntVar(&arg.Repeat, "n", 100_000, "corpus sentence repetitions")
	flag.IntVar(&arg.Level, "level", -1, "compression level (-1: codec default)")
	flag.BoolVar(&arg.Version, "version", false, "print version and exit")
	flag.Parse()

	if arg.Version {
		fmt.Println(version.Get().Raw)
		return nil
	}

	var corpus []byte
	if arg.File != "" {
		data, err := os.ReadFile(arg.File)
		if err != nil {
			return errors.Wrap(err, "read corpus")
		}
		corpus = data
	} else {
		corpus = bytes.Repeat([]byte("oh what a beautiful morning, oh what a beautiful day!!"), arg.Repeat)
	}
	lg.Info("Corpus ready", zap.Int("bytes", len(corpus)))

	var opts []press.Option
	if arg.Level >= 0 {
		opts = append(opts, press.Level(arg.Level))
	}

	for _, m := range press.MethodValues() {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := families[m]

		start := time.Now()
		compressed, err := f.compress(press.NewBytes(corpus), opts...)
		if err != nil {
			return errors.Wrapf(err, "%s: compress", m)
		}
		compressTime := time.Since(start)

		start = time.Now()
		decompressed, err := f.decompress(compressed)
		if err != nil {
			return errors.Wrapf(err, "%s: decompress", m)
		}
		decompressTime := time.Since(start)

		if !bytes.Equal(corpus, decompressed.(press.Bytes).Bytes()) {
			return errors.Errorf("%s: round trip mismatch", m)
		}

		lg.Info("Round trip",
			zap.Stringer("codec", m),
			zap.Int("compressed", compressed.Len()),
			zap.Float64("ratio", float64(len(corpus))/float64(compressed.Len())),
			zap.Duration("compress", compressTime),
			zap.Duration("decompress", decompressTime),
		)
	}

	return nil
}

func main() {
	app.Run(run)
}
