// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/cncio/mbio/internal/frame"
	"github.com/cncio/mbio/internal/transport"
)

// Transport implements transport.Interface over a goburrow Modbus client
// (TCP or RTU). It serializes transactions because it mutates the handler's
// SlaveId per frame.
type Transport struct {
	mu       sync.Mutex
	client   modbus.Client
	setSlave func(uint8)
	closer   func() error
}

// Config selects and parameterizes the underlying connection.
type Config struct {
	Mode     string // "tcp" or "rtu"
	Endpoint string // host:port, tcp mode
	Device   string // serial device path, rtu mode

	// Serial line settings, rtu mode.
	BaudRate int
	DataBits int
	Parity   string
	StopBits int

	Timeout time.Duration
}

// New creates a connected transport.
func New(cfg Config) (*Transport, error) {
	switch cfg.Mode {
	case "tcp":
		if cfg.Endpoint == "" {
			return nil, errors.New("transport: endpoint required")
		}

		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout

		if err := h.Connect(); err != nil {
			return nil, err
		}

		return &Transport{
			client:   modbus.NewClient(h),
			setSlave: func(id uint8) { h.SlaveId = id },
			closer:   h.Close,
		}, nil

	case "rtu":
		if cfg.Device == "" {
			return nil, errors.New("transport: serial device required")
		}

		h := modbus.NewRTUClientHandler(cfg.Device)
		h.BaudRate = cfg.BaudRate
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		h.Timeout = cfg.Timeout

		if err := h.Connect(); err != nil {
			return nil, err
		}

		return &Transport{
			client:   modbus.NewClient(h),
			setSlave: func(id uint8) { h.SlaveId = id },
			closer:   h.Close,
		}, nil

	default:
		return nil, errors.New("transport: mode must be tcp or rtu")
	}
}

// Close closes the underlying connection.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closer()
}

// Send implements transport.Interface. The goburrow client is synchronous,
// so the completion callback always runs before Send returns; the block
// flag exists for the boundary contract and is effectively always honored.
func (t *Transport) Send(msg *frame.Frame, cb transport.Callbacks, block bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setSlave(msg.Device())

	fc := msg.Function()
	device := msg.Device()

	var data []byte
	var err error

	switch fc {
	case frame.FuncReadCoils:
		data, err = t.client.ReadCoils(msg.Register(), msg.Value())
	case frame.FuncReadDiscreteInputs:
		data, err = t.client.ReadDiscreteInputs(msg.Register(), msg.Value())
	case frame.FuncReadHoldingRegisters:
		data, err = t.client.ReadHoldingRegisters(msg.Register(), msg.Value())
	case frame.FuncReadInputRegisters:
		data, err = t.client.ReadInputRegisters(msg.Register(), msg.Value())
	case frame.FuncWriteCoil:
		_, err = t.client.WriteSingleCoil(msg.Register(), msg.Value())
	case frame.FuncWriteRegister:
		_, err = t.client.WriteSingleRegister(msg.Register(), msg.Value())
	default:
		cb.OnException(exIllegalFunction, msg.Context)
		return
	}

	if err != nil {
		cb.OnException(exceptionCode(err), msg.Context)
		return
	}

	switch fc {
	case frame.FuncWriteCoil, frame.FuncWriteRegister:
		// Echo response: identical to the request ADU.
	default:
		adu := make([]byte, 3+len(data))
		adu[0] = device
		adu[1] = fc
		adu[2] = byte(len(data))
		copy(adu[3:], data)
		msg.ADU = adu
	}

	cb.OnPacket(msg)
}

const exIllegalFunction uint8 = 0x01

// exceptionCode maps a goburrow error to the code reported on the
// exception callback. Non-Modbus failures map to ErrTransport.
func exceptionCode(err error) uint8 {
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return me.ExceptionCode
	}
	return transport.ErrTransport
}
