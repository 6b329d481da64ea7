package protocol

// SlotState is the connection state of a controller port.
type SlotState uint8

const (
	SlotDisconnected SlotState = 0
	SlotReserved     SlotState = 1
	SlotConnected    SlotState = 2
)

func (s SlotState) valid() bool { return s <= SlotConnected }

func (s SlotState) String() string {
	switch s {
	case SlotDisconnected:
		return "disconnected"
	case SlotReserved:
		return "reserved"
	case SlotConnected:
		return "connected"
	}
	return "invalid"
}

// Model describes the motion capabilities of a controller.
type Model uint8

const (
	ModelNone        Model = 0
	ModelPartialGyro Model = 1
	ModelFullGyro    Model = 2
	ModelUnused      Model = 3
)

func (m Model) valid() bool { return m <= ModelUnused }

func (m Model) String() string {
	switch m {
	case ModelNone:
		return "n/a"
	case ModelPartialGyro:
		return "partial-gyro"
	case ModelFullGyro:
		return "full-gyro"
	case ModelUnused:
		return "unused"
	}
	return "invalid"
}

// ConnectionType is the physical transport of a controller.
type ConnectionType uint8

const (
	ConnectionNone      ConnectionType = 0
	ConnectionUSB       ConnectionType = 1
	ConnectionBluetooth ConnectionType = 2
)

func (c ConnectionType) valid() bool { return c <= ConnectionBluetooth }

func (c ConnectionType) String() string {
	switch c {
	case ConnectionNone:
		return "n/a"
	case ConnectionUSB:
		return "usb"
	case ConnectionBluetooth:
		return "bluetooth"
	}
	return "invalid"
}

// BatteryStatus is the reported charge level. The wire codes are not
// contiguous: charging states live at 0xEE/0xEF.
type BatteryStatus uint8

const (
	BatteryNone     BatteryStatus = 0x00
	BatteryDying    BatteryStatus = 0x01
	BatteryLow      BatteryStatus = 0x02
	BatteryMedium   BatteryStatus = 0x03
	BatteryHigh     BatteryStatus = 0x04
	BatteryFull     BatteryStatus = 0x05
	BatteryCharging BatteryStatus = 0xEE
	BatteryCharged  BatteryStatus = 0xEF
)

func (b BatteryStatus) valid() bool {
	return b <= BatteryFull || b == BatteryCharging || b == BatteryCharged
}

func (b BatteryStatus) String() string {
	switch b {
	case BatteryNone:
		return "n/a"
	case BatteryDying:
		return "dying"
	case BatteryLow:
		return "low"
	case BatteryMedium:
		return "medium"
	case BatteryHigh:
		return "high"
	case BatteryFull:
		return "full"
	case BatteryCharging:
		return "charging"
	case BatteryCharged:
		return "charged"
	}
	return "invalid"
}

// Registration selects which controllers a data request subscribes to.
type Registration uint8

const (
	RegisterAll  Registration = 0
	RegisterSlot Registration = 1
	RegisterMAC  Registration = 2
)

func (r Registration) valid() bool { return r <= RegisterMAC }

func (r Registration) String() string {
	switch r {
	case RegisterAll:
		return "all"
	case RegisterSlot:
		return "slot"
	case RegisterMAC:
		return "mac"
	}
	return "invalid"
}

// Buttons is the 2-byte digital button bitmask of a ControllerData
// message. The low byte is wire byte 0, the high byte wire byte 1.
type Buttons uint16

const (
	ButtonSelect Buttons = 1 << iota
	ButtonLStick
	ButtonRStick
	ButtonStart
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonLeft
	ButtonL2
	ButtonR2
	ButtonL1
	ButtonR1
	ButtonX
	ButtonA
	ButtonB
	ButtonY
)

// Has reports whether all bits of mask are set.
func (b Buttons) Has(mask Buttons) bool { return b&mask == mask }
