package press

//go:generate go run github.com/dmarkham/enumer -transform snake -type Method -output method_enum.go

// Method is a codec family.
type Method byte

// Codec families, in registration order.
const (
	Snappy Method = iota
	Brotli
	Deflate
	Gzip
	LZ4
	Zstd
)
