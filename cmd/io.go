package cmd

import "io"

const maxEventSize = 1 << 20

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxEventSize))
}
