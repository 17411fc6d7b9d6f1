package fault

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// metaKind enumerates the permitted metadata value shapes.
type metaKind uint8

const (
	metaInvalid metaKind = iota
	metaString
	metaInt
	metaFloat
	metaBool
	metaTime
	metaDuration
	metaID
	metaTag
)

// Value is a metadata value restricted to a closed set of shapes. The zero
// Value is invalid and rejected by WithMeta. Construct one through the
// shape constructors below.
type Value struct {
	kind metaKind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
	d    time.Duration
	id   uuid.UUID
}

func String(s string) Value { return Value{kind: metaString, s: s} }

func Int(i int64) Value { return Value{kind: metaInt, i: i} }

func Float(f float64) Value { return Value{kind: metaFloat, f: f} }

func Bool(b bool) Value { return Value{kind: metaBool, b: b} }

func Time(t time.Time) Value { return Value{kind: metaTime, t: t} }

func Duration(d time.Duration) Value { return Value{kind: metaDuration, d: d} }

func ID(id uuid.UUID) Value { return Value{kind: metaID, id: id} }

// Tag wraps an enumerated label, kept distinct from free-form strings.
func Tag(label string) Value { return Value{kind: metaTag, s: label} }

// IsValid reports whether the value was built by a shape constructor.
func (v Value) IsValid() bool {
	return v.kind != metaInvalid
}

func (v Value) String() string {
	switch v.kind {
	case metaString:
		return v.s
	case metaInt:
		return strconv.FormatInt(v.i, 10)
	case metaFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case metaBool:
		return strconv.FormatBool(v.b)
	case metaTime:
		return v.t.Format(time.RFC3339Nano)
	case metaDuration:
		return v.d.String()
	case metaID:
		return v.id.String()
	case metaTag:
		return v.s
	default:
		return "<invalid>"
	}
}

// Entry is one ordered metadata pair.
type Entry struct {
	Key   string
	Value Value
}
