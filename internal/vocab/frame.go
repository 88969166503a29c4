package vocab

import "fmt"

// Frame_e enumerates the grammatical shapes a verb can accept, per
// spec section 4.3.
type Frame_e int

const (
	FrameUnknown Frame_e = iota
	FrameIntransitive
	FrameDirectOnly
	FrameDirectPrepIndirect
	FrameMultiObject
)

var frameToString = map[Frame_e]string{
	FrameUnknown:            "?",
	FrameIntransitive:       "intransitive",
	FrameDirectOnly:         "direct",
	FrameDirectPrepIndirect: "direct+prep+indirect",
	FrameMultiObject:        "multi-object",
}

func (f Frame_e) String() string {
	if s, ok := frameToString[f]; ok {
		return s
	}
	return fmt.Sprintf("Frame(%d)", int(f))
}
