package utils

import (
	"crypto/rand"
	"encoding/binary"
)

func RandomSeed() uint64 {
	var data [8]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(data[:])
}
