package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleA and sampleB are test-only payload types standing in for real
// registered packets, mirroring the conformance Sample packets in the
// retrieved reference sources.
type sampleA struct {
	X uint32
}

func (s *sampleA) Cmd() uint16  { return 0x1001 }
func (s *sampleA) Size() int    { return 4 }
func (s *sampleA) Align() int   { return 4 }
func (s *sampleA) MarshalTo(dst []byte) error {
	dst[0] = byte(s.X)
	dst[1] = byte(s.X >> 8)
	dst[2] = byte(s.X >> 16)
	dst[3] = byte(s.X >> 24)
	return nil
}
func (s *sampleA) UnmarshalFrom(src []byte) error {
	s.X = uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
	return nil
}

type sampleB struct {
	Y uint8
	Z uint8
}

func (s *sampleB) Cmd() uint16 { return 0x1002 }
func (s *sampleB) Size() int   { return 2 }
func (s *sampleB) Align() int  { return 1 }
func (s *sampleB) MarshalTo(dst []byte) error {
	dst[0], dst[1] = s.Y, s.Z
	return nil
}
func (s *sampleB) UnmarshalFrom(src []byte) error {
	s.Y, s.Z = src[0], src[1]
	return nil
}

func buildSampleRegistry(t *testing.T) *Registry {
	t.Helper()
	b := NewBuilder()
	Register[sampleA](b)
	Register[sampleB](b)
	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

func TestRegistryAssignsAlignedOffsets(t *testing.T) {
	reg := buildSampleRegistry(t)

	offA, ok := reg.Offset(0x1001)
	require.True(t, ok)
	require.Equal(t, 0, offA)

	offB, ok := reg.Offset(0x1002)
	require.True(t, ok)
	require.Equal(t, 4, offB)

	require.Equal(t, 6, reg.TotalSize())
}

func TestRegistryRejectsDuplicateCmd(t *testing.T) {
	b := NewBuilder()
	Register[sampleA](b)
	Register[sampleA](b)
	_, err := b.Build()
	require.Error(t, err)
}

func TestRegistryNewProducesZeroValue(t *testing.T) {
	reg := buildSampleRegistry(t)

	p, ok := reg.New(0x1001)
	require.True(t, ok)
	a, ok := p.(*sampleA)
	require.True(t, ok)
	require.Zero(t, a.X)
}

func TestRegistryUnknownCmd(t *testing.T) {
	reg := buildSampleRegistry(t)

	_, ok := reg.CmdIndex(0xFFFF)
	require.False(t, ok)
	require.False(t, reg.IsRegistered(0xFFFF))
	_, ok = reg.New(0xFFFF)
	require.False(t, ok)
}

func TestRegistryPreservesRegistrationOrderInCmds(t *testing.T) {
	reg := buildSampleRegistry(t)
	require.Equal(t, []uint16{0x1001, 0x1002}, reg.Cmds())
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, alignUp(0, 4))
	require.Equal(t, 4, alignUp(1, 4))
	require.Equal(t, 4, alignUp(4, 4))
	require.Equal(t, 8, alignUp(5, 4))
	require.Equal(t, 3, alignUp(3, 1))
	require.Equal(t, 3, alignUp(3, 0))
}
