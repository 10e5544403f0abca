package packets

// EventData reports field-event state (supply zones, energy mechanism,
// elevated zones, dart hits, gain points), sent at 1Hz. All fields are
// packed into a single 32-bit word on the wire; Flags holds that raw
// word and the accessor methods unpack each sub-field.
type EventData struct {
	Flags uint32
}

const (
	eventSupplyStationOccupyShift  = 0
	eventSupplyStationOccupyMask   = 0x7
	eventEnergyMechanicStatusShift = 3
	eventEnergyMechanicStatusMask  = 0xF
	eventCenterGainZoneShift       = 7
	eventCenterGainZoneMask        = 0x3
	eventTrapezoidGainZoneShift    = 9
	eventTrapezoidGainZoneMask     = 0x3
	eventDartHitTimeShift          = 11
	eventDartHitTimeMask           = 0x1FF
	eventDartHitTargetShift        = 20
	eventDartHitTargetMask         = 0x7
	eventCenterGainStatusShift     = 23
	eventCenterGainStatusMask      = 0x3
	eventFortressGainStatusShift   = 25
	eventFortressGainStatusMask    = 0x3
	eventOutpostGainStatusShift    = 27
	eventOutpostGainStatusMask     = 0x3
	eventBaseGainStatusShift       = 29
	eventBaseGainStatusMask        = 0x1
)

func (e *EventData) field(shift, mask uint32) uint32 { return (e.Flags >> shift) & mask }
func (e *EventData) setField(shift, mask, v uint32) {
	e.Flags = (e.Flags &^ (mask << shift)) | ((v & mask) << shift)
}

func (e *EventData) SupplyStationOccupy() uint32 {
	return e.field(eventSupplyStationOccupyShift, eventSupplyStationOccupyMask)
}
func (e *EventData) SetSupplyStationOccupy(v uint32) {
	e.setField(eventSupplyStationOccupyShift, eventSupplyStationOccupyMask, v)
}

func (e *EventData) EnergyMechanicStatus() uint32 {
	return e.field(eventEnergyMechanicStatusShift, eventEnergyMechanicStatusMask)
}
func (e *EventData) SetEnergyMechanicStatus(v uint32) {
	e.setField(eventEnergyMechanicStatusShift, eventEnergyMechanicStatusMask, v)
}

func (e *EventData) CenterGainZone() uint32 {
	return e.field(eventCenterGainZoneShift, eventCenterGainZoneMask)
}
func (e *EventData) SetCenterGainZone(v uint32) {
	e.setField(eventCenterGainZoneShift, eventCenterGainZoneMask, v)
}

func (e *EventData) TrapezoidGainZone() uint32 {
	return e.field(eventTrapezoidGainZoneShift, eventTrapezoidGainZoneMask)
}
func (e *EventData) SetTrapezoidGainZone(v uint32) {
	e.setField(eventTrapezoidGainZoneShift, eventTrapezoidGainZoneMask, v)
}

// DartHitTime is the countdown second (0-420) the last enemy dart hit.
func (e *EventData) DartHitTime() uint32 {
	return e.field(eventDartHitTimeShift, eventDartHitTimeMask)
}
func (e *EventData) SetDartHitTime(v uint32) {
	e.setField(eventDartHitTimeShift, eventDartHitTimeMask, v)
}

func (e *EventData) DartHitTarget() uint32 {
	return e.field(eventDartHitTargetShift, eventDartHitTargetMask)
}
func (e *EventData) SetDartHitTarget(v uint32) {
	e.setField(eventDartHitTargetShift, eventDartHitTargetMask, v)
}

func (e *EventData) CenterGainStatus() uint32 {
	return e.field(eventCenterGainStatusShift, eventCenterGainStatusMask)
}
func (e *EventData) SetCenterGainStatus(v uint32) {
	e.setField(eventCenterGainStatusShift, eventCenterGainStatusMask, v)
}

func (e *EventData) FortressGainStatus() uint32 {
	return e.field(eventFortressGainStatusShift, eventFortressGainStatusMask)
}
func (e *EventData) SetFortressGainStatus(v uint32) {
	e.setField(eventFortressGainStatusShift, eventFortressGainStatusMask, v)
}

func (e *EventData) OutpostGainStatus() uint32 {
	return e.field(eventOutpostGainStatusShift, eventOutpostGainStatusMask)
}
func (e *EventData) SetOutpostGainStatus(v uint32) {
	e.setField(eventOutpostGainStatusShift, eventOutpostGainStatusMask, v)
}

func (e *EventData) BaseGainStatus() uint32 {
	return e.field(eventBaseGainStatusShift, eventBaseGainStatusMask)
}
func (e *EventData) SetBaseGainStatus(v uint32) {
	e.setField(eventBaseGainStatusShift, eventBaseGainStatusMask, v)
}

func (*EventData) Cmd() uint16 { return 0x0101 }
func (*EventData) Size() int   { return 4 }
func (*EventData) Align() int  { return 4 }

func (e *EventData) MarshalTo(dst []byte) error {
	putUint32LE(dst, e.Flags)
	return nil
}

func (e *EventData) UnmarshalFrom(src []byte) error {
	e.Flags = uint32LE(src)
	return nil
}
