package cmdlist

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/math"
)

// Command is one decoded entry of a List. Only the fields used by Op are
// set.
type Command struct {
	Op     int
	Mode   gu.MatrixMode
	Matrix math.Mat4

	Prim           gu.Primitive
	VType          gu.VertexType
	Count, N       int
	UCount, VCount int
	UEdge, VEdge   int

	Indices, Vertices []byte
}

// argCount is the number of argument words after each opcode, excluding
// raw buffer payloads.
var argCount = map[int]int{
	OpSetMatrix:  17,
	OpDrawArray:  5,
	OpDrawArrayN: 6,
	OpDrawBezier: 5,
	OpDrawSpline: 7,
}

// Commands decodes the stream. Raw buffer blocks are attached to the draws
// that reference them and do not appear on their own.
func (l *List) Commands() ([]Command, error) {
	var cmds []Command
	for pc := 0; pc < len(l.Buf); {
		op := int(l.Buf[pc])
		if op == OpRawBuffer {
			if pc+1 >= len(l.Buf) {
				return nil, fmt.Errorf("%w: truncated buffer header at %d", ErrCorrupt, pc)
			}
			size, ok := l.blockSize(pc)
			if !ok {
				return nil, fmt.Errorf("%w: buffer at %d overruns stream", ErrCorrupt, pc)
			}
			pc += 2 + (size+3)/4
			continue
		}

		n, ok := argCount[op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown opcode %d at %d", ErrCorrupt, op, pc)
		}
		if pc+1+n > len(l.Buf) {
			return nil, fmt.Errorf("%w: truncated opcode %d at %d", ErrCorrupt, op, pc)
		}
		args := l.Buf[pc+1 : pc+1+n]
		pc += 1 + n

		cmd := Command{Op: op}
		var ib, vb uint32
		switch op {
		case OpSetMatrix:
			cmd.Mode = gu.MatrixMode(int32(args[0]))
			for i := range cmd.Matrix {
				cmd.Matrix[i] = gomath.Float32frombits(args[1+i])
			}
			cmds = append(cmds, cmd)
			continue
		case OpDrawArray:
			cmd.Prim, cmd.VType, cmd.Count = gu.Primitive(int32(args[0])), gu.VertexType(args[1]), int(int32(args[2]))
			ib, vb = args[3], args[4]
		case OpDrawArrayN:
			cmd.Prim, cmd.VType, cmd.Count, cmd.N = gu.Primitive(int32(args[0])), gu.VertexType(args[1]), int(int32(args[2])), int(int32(args[3]))
			ib, vb = args[4], args[5]
		case OpDrawBezier:
			cmd.VType, cmd.UCount, cmd.VCount = gu.VertexType(args[0]), int(int32(args[1])), int(int32(args[2]))
			ib, vb = args[3], args[4]
		case OpDrawSpline:
			cmd.VType, cmd.UCount, cmd.VCount = gu.VertexType(args[0]), int(int32(args[1])), int(int32(args[2]))
			cmd.UEdge, cmd.VEdge = int(int32(args[3])), int(int32(args[4]))
			ib, vb = args[5], args[6]
		}

		var err error
		if cmd.Indices, err = l.buffer(ib); err != nil {
			return nil, err
		}
		if cmd.Vertices, err = l.buffer(vb); err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// blockSize returns the byte size of the raw block whose header is at pc.
// ok is false if the payload would run past the end of the stream. The
// size word is compared before conversion so it cannot go negative.
func (l *List) blockSize(pc int) (size int, ok bool) {
	avail := uint64(len(l.Buf)-pc-2) * 4
	if uint64(l.Buf[pc+1]) > avail {
		return 0, false
	}
	return int(l.Buf[pc+1]), true
}

// buffer returns a copy of the raw block at off.
func (l *List) buffer(off uint32) ([]byte, error) {
	if off == noBuffer {
		return nil, nil
	}
	i := int(off)
	if i < 0 || i+1 >= len(l.Buf) || l.Buf[i] != OpRawBuffer {
		return nil, fmt.Errorf("%w: no buffer at %d", ErrCorrupt, i)
	}
	size, ok := l.blockSize(i)
	if !ok {
		return nil, fmt.Errorf("%w: buffer at %d overruns stream", ErrCorrupt, i)
	}
	words := (size + 3) / 4
	out := make([]byte, 0, words*4)
	for _, w := range l.Buf[i+2 : i+2+words] {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out[:size], nil
}

// MatrixUploads counts the SetMatrix commands recorded for mode.
func (l *List) MatrixUploads(mode gu.MatrixMode) int {
	cmds, err := l.Commands()
	if err != nil {
		return 0
	}
	n := 0
	for _, c := range cmds {
		if c.Op == OpSetMatrix && c.Mode == mode {
			n++
		}
	}
	return n
}

// Draws counts the draw commands of every kind.
func (l *List) Draws() int {
	cmds, err := l.Commands()
	if err != nil {
		return 0
	}
	n := 0
	for _, c := range cmds {
		if c.Op != OpSetMatrix {
			n++
		}
	}
	return n
}

// Replay issues every recorded command to dst in order.
func (l *List) Replay(dst gu.Backend) error {
	cmds, err := l.Commands()
	if err != nil {
		return err
	}
	for i, c := range cmds {
		switch c.Op {
		case OpSetMatrix:
			err = dst.SetMatrix(c.Mode, c.Matrix)
		case OpDrawArray:
			err = dst.DrawArray(c.Prim, c.VType, c.Count, c.Indices, c.Vertices)
		case OpDrawArrayN:
			err = dst.DrawArrayN(c.Prim, c.VType, c.Count, c.N, c.Indices, c.Vertices)
		case OpDrawBezier:
			err = dst.DrawBezier(c.VType, c.UCount, c.VCount, c.Indices, c.Vertices)
		case OpDrawSpline:
			err = dst.DrawSpline(c.VType, c.UCount, c.VCount, c.UEdge, c.VEdge, c.Indices, c.Vertices)
		}
		if err != nil {
			return fmt.Errorf("replay command %d: %w", i, err)
		}
	}
	return nil
}
