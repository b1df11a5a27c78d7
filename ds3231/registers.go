package ds3231

// Register is a device-side register offset.
type Register uint8

const (
	DefaultAddress = 0x68 // I2C address for DS3231

	RegSecond      Register = 0x00 // Seconds, 00-59
	RegMinute      Register = 0x01 // Minutes, 00-59
	RegHour        Register = 0x02 // Hours, 00-23 in 24-hour mode
	RegWeekday     Register = 0x03 // Day of week, 1-7
	RegDate        Register = 0x04 // Day of month, 01-31
	RegMonth       Register = 0x05 // Month 01-12, bit 7 is the century flag
	RegYear        Register = 0x06 // Year, 00-99
	RegControl     Register = 0x0E // Control register
	RegStatus      Register = 0x0F // Control/status register
	RegTemperature Register = 0x11 // Temperature MSB, LSB follows at 0x12
)

// TimeRegisters lists the time and date registers in the order they are written and read.
var TimeRegisters = [7]Register{RegSecond, RegMinute, RegHour, RegWeekday, RegDate, RegMonth, RegYear}

// control and status register bits
const (
	controlEOSC = 1 << 7 // oscillator disabled while on battery
	statusOSF   = 1 << 7 // oscillator stop flag
)
