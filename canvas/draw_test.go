// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/pixel"
)

func draw(t *testing.T, c *canvas.Canvas, height uint64, sender string, chunkX, chunkY, x, y uint64, color pixel.Color) error {
	_, err := call(t, func() (*canvas.Response, error) {
		return c.Draw(canvas.Env{Height: height, Sender: sender}, chunkX, chunkY, x, y, color)
	})
	return err
}

func TestDrawThenRead(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, nil)

	for chunkX := uint64(0); chunkX < 2; chunkX += 1 {
		for chunkY := uint64(0); chunkY < 2; chunkY += 1 {
			for _, xy := range [][2]uint64{{0, 0}, {15, 0}, {0, 15}, {15, 15}, {7, 9}} {
				color := pixel.Color((chunkX + 2*chunkY + xy[0]) % uint64(pixel.NumberOfColors))
				err := draw(t, c, 1, alice, chunkX, chunkY, xy[0], xy[1], color)
				assert.Nil(t, err, "draw (%d,%d)/%v", chunkX, chunkY, xy)

				chunk, err := c.GetChunk(chunkX, chunkY)
				assert.Nil(t, err, "get chunk")
				assert.Equal(t, color, chunk[xy[0]][xy[1]].Color, "wrong color")
				assert.Equal(t, alice, chunk[xy[0]][xy[1]].Painter, "wrong painter")
			}
		}
	}
}

func TestDrawResponse(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, nil)

	r, err := call(t, func() (*canvas.Response, error) {
		return c.Draw(canvas.Env{Height: 0, Sender: alice}, 0, 0, 0, 0, pixel.Pink)
	})
	assert.Nil(t, err, "draw")
	assert.Equal(t, "draw", r.Attribute("action"), "wrong attribute")
}

func TestDrawOnlyChangesOneCell(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, nil)

	assert.Nil(t, draw(t, c, 0, alice, 1, 0, 2, 3, pixel.Blue), "first draw")
	assert.Nil(t, draw(t, c, 0, bob, 1, 0, 3, 2, pixel.Yellow), "second draw")

	expected := pixel.DefaultChunk()
	expected.Set(2, 3, pixel.Blue, alice)
	expected.Set(3, 2, pixel.Yellow, bob)

	chunk, _ := c.GetChunk(1, 0)
	assert.Equal(t, expected, *chunk, "wrong chunk")

	coordinates, err := c.Materialised()
	assert.Nil(t, err, "materialised")
	assert.Equal(t, 1, len(coordinates), "wrong chunk count")
}

func TestNeverDrawnMayDrawAtZero(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 100, nil)

	n, err := c.GetCooldown(alice)
	assert.Nil(t, err, "get cooldown")
	assert.Equal(t, uint64(0), n, "wrong cooldown")
	assert.Nil(t, draw(t, c, 0, alice, 0, 0, 0, 0, pixel.Red), "draw at zero")
}

func TestCooldown(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 30, nil)

	assert.Nil(t, draw(t, c, 100, alice, 0, 0, 0, 0, pixel.Red), "first draw")

	n, _ := c.GetCooldown(alice)
	assert.Equal(t, uint64(130), n, "wrong cooldown")

	assert.Equal(t, fault.StillOnCooldown, draw(t, c, 100, alice, 0, 0, 1, 1, pixel.Red), "same height")
	assert.Equal(t, fault.StillOnCooldown, draw(t, c, 129, alice, 0, 0, 1, 1, pixel.Red), "one before")

	// other callers are unaffected
	assert.Nil(t, draw(t, c, 101, bob, 0, 0, 2, 2, pixel.Red), "other caller")

	assert.Nil(t, draw(t, c, 130, alice, 0, 0, 1, 1, pixel.Gray), "at boundary")
	n, _ = c.GetCooldown(alice)
	assert.Equal(t, uint64(160), n, "cooldown not overwritten")
}

func TestCooldownSaturates(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 10, nil)

	top := ^uint64(0)
	assert.Nil(t, draw(t, c, top-3, alice, 0, 0, 0, 0, pixel.Red), "draw")
	n, _ := c.GetCooldown(alice)
	assert.Equal(t, top, n, "cooldown wrapped")
}

func TestInvalidCoordinates(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, nil)

	items := [][4]uint64{
		{0, 0, 16, 0},
		{0, 0, 0, 16},
		{2, 0, 0, 0},
		{0, 2, 0, 0},
		{^uint64(0), 0, 0, 0},
		{0, 0, ^uint64(0), 0},
	}
	for i, item := range items {
		err := draw(t, c, 0, alice, item[0], item[1], item[2], item[3], pixel.Red)
		assert.Equal(t, fault.InvalidCoordinates, err, "%d: wrong error", i)
	}

	n, _ := c.GetCooldown(alice)
	assert.Equal(t, uint64(0), n, "rejected draw set cooldown")
}

func TestEndHeightReached(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, uint64Ptr(50))

	assert.Nil(t, draw(t, c, 50, alice, 0, 0, 0, 0, pixel.Red), "draw at end height")
	assert.Equal(t, fault.EndHeightReached, draw(t, c, 51, bob, 0, 0, 1, 1, pixel.Red), "draw after end height")
	assert.Equal(t, fault.EndHeightReached, draw(t, c, 1000, bob, 0, 0, 0, 0, pixel.Blue), "draw long after end height")

	chunk, _ := c.GetChunk(0, 0)
	assert.Equal(t, pixel.White, chunk[1][1].Color, "grid changed")
	assert.Equal(t, pixel.Red, chunk[0][0].Color, "grid changed")
	assert.Equal(t, alice, chunk[0][0].Painter, "grid changed")
}

func TestInvalidColor(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 0, nil)

	assert.Equal(t, fault.InvalidColor, draw(t, c, 0, alice, 0, 0, 0, 0, pixel.Color(16)), "wrong error")
	assert.Equal(t, fault.InvalidColor, draw(t, c, 0, alice, 0, 0, 0, 0, pixel.Color(255)), "wrong error")

	coordinates, _ := c.Materialised()
	assert.Equal(t, 0, len(coordinates), "rejected draw materialised a chunk")
}

func TestDrawBeforeInstantiate(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	assert.Equal(t, fault.NotInstantiated, draw(t, c, 0, alice, 0, 0, 0, 0, pixel.Red), "wrong error")
}

// every combination of violated conditions reports the first in the
// order: coordinates, cooldown, end height, color
func TestDrawPrecedence(t *testing.T) {
	const (
		outOfBounds = 1 << iota
		onCooldown
		ended
		badColor
		allConditions
	)

	for mask := 0; mask < allConditions; mask += 1 {
		name := fmt.Sprintf("mask-%04b", mask)
		t.Run(name, func(t *testing.T) {
			c := setupTestCanvas(t)
			defer teardownTestCanvas()

			// alice is on cooldown until 1050, drawing closes after 100
			instantiate(t, c, 1000, uint64Ptr(100))
			if err := draw(t, c, 50, alice, 1, 1, 0, 0, pixel.Black); nil != err {
				t.Fatalf("setup draw error: %s", err)
			}

			sender := bob
			height := uint64(70)
			x := uint64(1)
			color := pixel.Red
			var expected error

			if 0 != mask&badColor {
				color = pixel.Color(16)
				expected = fault.InvalidColor
			}
			if 0 != mask&ended {
				height = 200
				expected = fault.EndHeightReached
			}
			if 0 != mask&onCooldown {
				sender = alice
				expected = fault.StillOnCooldown
			}
			if 0 != mask&outOfBounds {
				x = pixel.ChunkSize
				expected = fault.InvalidCoordinates
			}

			err := draw(t, c, height, sender, 0, 0, x, 1, color)
			assert.Equal(t, expected, err, "wrong error")

			chunk, _ := c.GetChunk(0, 0)
			if nil == expected {
				assert.Equal(t, color, chunk[x][1].Color, "draw not applied")
			} else {
				assert.Equal(t, pixel.DefaultChunk(), *chunk, "rejected draw changed the grid")
			}
		})
	}
}

func TestDrawRejectsUnstorablePainter(t *testing.T) {
	c := setupTestCanvas(t)
	defer teardownTestCanvas()

	instantiate(t, c, 10, nil)

	long := strings.Repeat("a", pixel.MaxPainterLength+1)
	for _, sender := range []string{"", long} {
		err := draw(t, c, 1, sender, 0, 0, 1, 1, pixel.Red)
		assert.Equal(t, fault.InvalidAddress, err, "sender length: %d", len(sender))
	}

	chunk, err := c.GetChunk(0, 0)
	assert.Nil(t, err, "chunk must stay readable")
	assert.Equal(t, pixel.DefaultChunk(), *chunk, "rejected draw changed the grid")

	// longest storable painter round trips and later draws still work
	longest := strings.Repeat("b", pixel.MaxPainterLength)
	assert.Nil(t, draw(t, c, 1, longest, 0, 0, 1, 1, pixel.Red), "longest painter")
	assert.Nil(t, draw(t, c, 1, bob, 0, 0, 2, 2, pixel.Blue), "later draw")

	chunk, err = c.GetChunk(0, 0)
	assert.Nil(t, err, "get chunk")
	assert.Equal(t, longest, chunk[1][1].Painter, "wrong painter")
	assert.Equal(t, bob, chunk[2][2].Painter, "wrong painter")
}
