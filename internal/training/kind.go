package training

import "fmt"

// Kind identifies one of the supported workout types.
type Kind int

const (
	Running Kind = iota + 1
	Walking
	Swimming
)

// Kinds lists every supported workout type in display order.
var Kinds = []Kind{Swimming, Running, Walking}

// ParseKind maps a sensor workout code ("SWM", "RUN", "WLK") to its Kind.
func ParseKind(code string) (Kind, error) {
	switch code {
	case "RUN":
		return Running, nil
	case "WLK":
		return Walking, nil
	case "SWM":
		return Swimming, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
}

// Code returns the sensor code for k.
func (k Kind) Code() string {
	switch k {
	case Running:
		return "RUN"
	case Walking:
		return "WLK"
	case Swimming:
		return "SWM"
	default:
		return ""
	}
}

// String returns the display name used in reports.
func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case Walking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Arity is the number of positional sensor values the kind expects.
func (k Kind) Arity() int {
	switch k {
	case Running:
		return 3
	case Walking:
		return 4
	case Swimming:
		return 5
	default:
		return 0
	}
}

// Fields names the positional sensor values in order.
func (k Kind) Fields() []string {
	common := []string{"action", "duration", "weight"}
	switch k {
	case Walking:
		return append(common, "height")
	case Swimming:
		return append(common, "length_pool", "count_pool")
	default:
		return common
	}
}
