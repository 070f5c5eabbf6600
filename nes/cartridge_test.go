package nes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks byte, flags6, flags7 byte, prg, chr []byte) []byte {
	buf := make([]byte, 16)
	copy(buf, inesMagic[:])
	buf[4] = prgBanks
	buf[5] = chrBanks
	buf[6] = flags6
	buf[7] = flags7
	buf = append(buf, prg...)
	buf = append(buf, chr...)
	return buf
}

func TestParseINES_HorizontalMirroring(t *testing.T) {
	prg := bytes.Repeat([]byte{0xEA}, prgUnit)
	chr := bytes.Repeat([]byte{0x00}, chrUnit)
	raw := buildINES(1, 1, 0, 0, prg, chr)

	cart, err := ParseINES(raw)
	require.NoError(t, err)
	defer dumpOnFailure(t, "cart", cart)

	assert.Equal(t, MirrorHorizontal, cart.Mirroring)
	assert.Len(t, cart.PRG, prgUnit)
	assert.Len(t, cart.CHR, chrUnit)
	assert.Equal(t, uint16(0x3FFF), cart.PRGMirrorMask())
}

func TestParseINES_VerticalMirroring32KPRG(t *testing.T) {
	prg := bytes.Repeat([]byte{0x00}, 2*prgUnit)
	raw := buildINES(2, 0, flags6Vertical, 0, prg, nil)

	cart, err := ParseINES(raw)
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, cart.Mirroring)
	assert.Equal(t, uint16(0x7FFF), cart.PRGMirrorMask())
	// no CHR banks: treated as 8KiB CHR RAM.
	assert.Len(t, cart.CHR, chrUnit)
}

func TestParseINES_FourScreen(t *testing.T) {
	prg := bytes.Repeat([]byte{0x00}, prgUnit)
	raw := buildINES(1, 0, flags6FourScreen, 0, prg, nil)

	cart, err := ParseINES(raw)
	require.NoError(t, err)
	assert.Equal(t, MirrorFourScreen, cart.Mirroring)
}

func TestParseINES_TrainerOffset(t *testing.T) {
	prg := bytes.Repeat([]byte{0x11}, prgUnit)
	raw := buildINES(1, 0, flags6Trainer, 0, append(make([]byte, trainerLen), prg...), nil)

	cart, err := ParseINES(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0x11), cart.PRG[0])
}

func TestParseINES_BadMagic(t *testing.T) {
	raw := []byte("NOPE0000000000000")
	_, err := ParseINES(raw)
	assert.True(t, errors.Is(err, ErrInvalidRom))
}

func TestParseINES_Version2Rejected(t *testing.T) {
	prg := bytes.Repeat([]byte{0x00}, prgUnit)
	raw := buildINES(1, 0, 0, flags7VersionBit, prg, nil)
	_, err := ParseINES(raw)
	assert.True(t, errors.Is(err, ErrInvalidRom))
}

func TestParseINES_Truncated(t *testing.T) {
	raw := buildINES(2, 0, 0, 0, make([]byte, prgUnit), nil) // claims 2 banks, has 1
	_, err := ParseINES(raw)
	assert.True(t, errors.Is(err, ErrInvalidRom))
}

func TestCartridge_ChrRamIsWritable(t *testing.T) {
	prg := bytes.Repeat([]byte{0x00}, prgUnit)
	raw := buildINES(1, 0, 0, 0, prg, nil)
	cart, err := ParseINES(raw)
	require.NoError(t, err)

	cart.ChrWrite(0x10, 0x42)
	assert.Equal(t, byte(0x42), cart.ChrRead(0x10))
}

func TestCartridge_ChrRomWritesDropped(t *testing.T) {
	prg := bytes.Repeat([]byte{0x00}, prgUnit)
	chr := bytes.Repeat([]byte{0x99}, chrUnit)
	raw := buildINES(1, 1, 0, 0, prg, chr)
	cart, err := ParseINES(raw)
	require.NoError(t, err)

	cart.ChrWrite(0, 0x42)
	assert.Equal(t, byte(0x99), cart.ChrRead(0))
}

func TestMirroring_String(t *testing.T) {
	assert.Equal(t, "horizontal", MirrorHorizontal.String())
	assert.Equal(t, "vertical", MirrorVertical.String())
	assert.Equal(t, "four-screen", MirrorFourScreen.String())
}
