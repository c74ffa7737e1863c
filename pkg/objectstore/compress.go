package objectstore

import "github.com/klauspost/compress/zstd"

// compress zstd-compresses data for on-disk storage. Content addressing
// always operates on the uncompressed bytes; compression is purely a
// storage-layer concern.
func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// decompress reverses compress.
func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
