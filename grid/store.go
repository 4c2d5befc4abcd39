// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package grid - the sparse chunk store
//
// chunks are keyed by chunk_x ++ chunk_y, both 8 byte big endian, so a
// cursor walks them in x major order
// a chunk is only written on its first draw, reads of an absent chunk
// return the default all white chunk
package grid

import (
	"encoding/binary"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/pixel"
	"github.com/bitmark-inc/canvasd/storage"
)

const (
	chunkSize = pixel.ChunkSize
	keyLength = 16
)

// Coordinate - position of a chunk
type Coordinate struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// Store - chunk records in a single pool
type Store struct {
	pool storage.Handle
}

// New - store over the given pool
func New(pool storage.Handle) *Store {
	return &Store{
		pool: pool,
	}
}

// Key - pool key for a chunk
func Key(chunkX uint64, chunkY uint64) []byte {
	key := make([]byte, keyLength)
	binary.BigEndian.PutUint64(key[:8], chunkX)
	binary.BigEndian.PutUint64(key[8:], chunkY)
	return key
}

// CoordinateFromKey - inverse of Key
func CoordinateFromKey(key []byte) (Coordinate, error) {
	if keyLength != len(key) {
		return Coordinate{}, fault.InvalidKeyLength
	}
	return Coordinate{
		X: binary.BigEndian.Uint64(key[:8]),
		Y: binary.BigEndian.Uint64(key[8:]),
	}, nil
}

// Load - the stored chunk or the default if never written
func (s *Store) Load(chunkX uint64, chunkY uint64) (*pixel.Chunk, error) {
	record, err := s.pool.Get(Key(chunkX, chunkY))
	if nil != err {
		return nil, fault.Storage("get chunk", err)
	}
	if nil == record {
		chunk := pixel.DefaultChunk()
		return &chunk, nil
	}
	return pixel.Unpack(record)
}

// Save - stage the chunk record
func (s *Store) Save(chunkX uint64, chunkY uint64, chunk *pixel.Chunk) error {
	return fault.Storage("put chunk", s.pool.Put(Key(chunkX, chunkY), chunk.Pack()))
}

// Page - up to count committed chunk coordinates from start onward, in
// key order
func (s *Store) Page(start Coordinate, count int) ([]Coordinate, error) {
	elements, err := s.pool.NewFetchCursor().Seek(Key(start.X, start.Y)).Fetch(count)
	if nil != err {
		return nil, err
	}
	coordinates := make([]Coordinate, 0, len(elements))
	for _, e := range elements {
		c, err := CoordinateFromKey(e.Key)
		if nil != err {
			return nil, err
		}
		coordinates = append(coordinates, c)
	}
	return coordinates, nil
}

// Successor - the coordinate after c in key order, false at the end
func (c Coordinate) Successor() (Coordinate, bool) {
	switch {
	case c.Y < ^uint64(0):
		return Coordinate{X: c.X, Y: c.Y + 1}, true
	case c.X < ^uint64(0):
		return Coordinate{X: c.X + 1, Y: 0}, true
	default:
		return c, false
	}
}

// Materialised - coordinates of every committed chunk, in key order
func (s *Store) Materialised() ([]Coordinate, error) {
	coordinates := make([]Coordinate, 0, 16)
	err := s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		c, err := CoordinateFromKey(key)
		if nil != err {
			return err
		}
		coordinates = append(coordinates, c)
		return nil
	})
	if nil != err {
		if fault.IsErrInvalid(err) {
			return nil, err
		}
		return nil, fault.Storage("scan chunks", err)
	}
	return coordinates, nil
}
