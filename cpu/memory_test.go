package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lc3/device"
)

func TestMemory_PlainStorage(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	mem.Write(0x3000, 0x1234)
	assert.Equal(uint16(0x1234), mem.Read(0x3000))

	// Device registers are writable like any other address.
	mem.Write(MR_KBDR, 0x0041)
	assert.Equal(uint16(0x0041), mem.Read(MR_KBDR))
}

func TestMemory_KeyboardIdle(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	// No keyboard attached: the status register always reads zero.
	assert.Equal(uint16(0), mem.Read(MR_KBSR))

	// Keyboard attached, no key pending: still zero.
	mem.Keyboard = &device.Script{}
	assert.Equal(uint16(0), mem.Read(MR_KBSR))
}

func TestMemory_KeyboardPending(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{
		Keyboard: &device.Script{Keys: []byte("ab")},
	}

	// A pending key sets the ready bit and latches the key into KBDR.
	status := mem.Read(MR_KBSR)
	assert.Equal(KBSR_READY, status&KBSR_READY)
	assert.Equal(uint16('a'), mem.Read(MR_KBDR))

	// Reading KBDR cleared the ready bit; the next status read polls the
	// next key.
	status = mem.Read(MR_KBSR)
	assert.Equal(KBSR_READY, status&KBSR_READY)
	assert.Equal(uint16('b'), mem.Read(MR_KBDR))

	// Script exhausted: status drops back to zero.
	assert.Equal(uint16(0), mem.Read(MR_KBSR))
}

func TestMemory_KeyboardLatch(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{
		Keyboard: &device.Script{Keys: []byte("ab")},
	}

	// Repeated status reads must not consume the latched key before the
	// program reads KBDR.
	assert.Equal(KBSR_READY, mem.Read(MR_KBSR)&KBSR_READY)
	assert.Equal(KBSR_READY, mem.Read(MR_KBSR)&KBSR_READY)
	assert.Equal(uint16('a'), mem.Read(MR_KBDR))
}
