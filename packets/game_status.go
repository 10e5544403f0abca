package packets

import "github.com/basestationlabs/rframe/wire"

// GameStatus reports overall match phase and timing, sent at 1Hz.
type GameStatus struct {
	// Flags packs GameType (low nibble) and GameProgress (high
	// nibble) into a single byte, matching the wire layout's two
	// 4-bit fields.
	Flags           uint8
	StageRemainTime uint16
	SyncTimestamp   uint64
}

// GameType returns the match type: 1-ultimate, 2-single-item, 3-ICRA,
// 4-3v3, 5-infantry.
func (g *GameStatus) GameType() uint8 { return g.Flags & 0x0F }

// SetGameType sets the low nibble of Flags.
func (g *GameStatus) SetGameType(v uint8) { g.Flags = (g.Flags &^ 0x0F) | (v & 0x0F) }

// GameProgress returns the current match stage: 0-not started,
// 1-preparation, 2-self-check, 3-5s countdown, 4-in progress,
// 5-settling.
func (g *GameStatus) GameProgress() uint8 { return g.Flags >> 4 }

// SetGameProgress sets the high nibble of Flags.
func (g *GameStatus) SetGameProgress(v uint8) { g.Flags = (g.Flags & 0x0F) | (v << 4) }

func (*GameStatus) Cmd() uint16 { return 0x0001 }
func (*GameStatus) Size() int   { return 11 }
func (*GameStatus) Align() int  { return 8 }

func (g *GameStatus) MarshalTo(dst []byte) error {
	_ = dst[10]
	dst[0] = g.Flags
	wire.PutUint16LE(dst[1:3], g.StageRemainTime)
	putUint64LE(dst[3:11], g.SyncTimestamp)
	return nil
}

func (g *GameStatus) UnmarshalFrom(src []byte) error {
	_ = src[10]
	g.Flags = src[0]
	g.StageRemainTime = wire.Uint16LE(src[1:3])
	g.SyncTimestamp = uint64LE(src[3:11])
	return nil
}
