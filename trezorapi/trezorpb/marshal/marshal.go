// Package marshal converts trezorpb messages to and from the protobuf wire
// format, using the protobuf struct tags of the catalog.
//
// TODO: replace the catalog with protoc-gen-go output of the trezor-common
// messages*.proto files and encode with google.golang.org/protobuf/proto.
package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/trezor/trezorlib-go/trezorapi/trezorpb"
	types "github.com/trezor/trezorlib-go/trezorapi/trezortypes"
)

var (
	ErrMalformedData = errors.New("malformed protobuf data")
	ErrNilMessage    = errors.New("nil message")
)

// Marshal encodes a message together with its type tag.
func Marshal(msg trezorpb.Message) (*types.Message, error) {
	if msg == nil || reflect.ValueOf(msg).IsNil() {
		return nil, ErrNilMessage
	}
	if u, ok := msg.(*trezorpb.Unrecognized); ok {
		return &types.Message{Kind: uint16(u.Kind), Data: u.Data}, nil
	}
	data, err := Encode(msg)
	if err != nil {
		return nil, err
	}
	return &types.Message{
		Kind: uint16(msg.MessageType()),
		Data: data,
	}, nil
}

// Unmarshal decodes a wire message. A tag missing from the catalog is not
// an error; it comes back as *trezorpb.Unrecognized.
func Unmarshal(m *types.Message) (trezorpb.Message, error) {
	kind := trezorpb.MessageType(m.Kind)
	msg, ok := trezorpb.New(kind)
	if !ok {
		data := make([]byte, len(m.Data))
		copy(data, m.Data)
		return &trezorpb.Unrecognized{Kind: kind, Data: data}, nil
	}
	if err := Decode(m.Data, msg); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return msg, nil
}

// Encode writes the protobuf body of v, a pointer to a catalog struct.
func Encode(v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot encode %T", v)
	}
	return appendStruct(nil, rv.Elem())
}

// Decode parses a protobuf body into v, a pointer to a catalog struct.
func Decode(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cannot decode into %T", v)
	}
	return decodeStruct(data, rv.Elem())
}

type wireKind int

const (
	kindVarint wireKind = iota
	kindBytes
)

type fieldInfo struct {
	index    int
	num      protowire.Number
	kind     wireKind
	repeated bool
	packed   bool
}

type structInfo struct {
	fields []fieldInfo // sorted by field number
	byNum  map[protowire.Number]*fieldInfo
	extra  int // index of the Extra field, -1 if none
}

var (
	extraType = reflect.TypeOf(trezorpb.Extra(nil))
	infoCache sync.Map // reflect.Type -> *structInfo
)

func infoOf(t reflect.Type) (*structInfo, error) {
	if si, ok := infoCache.Load(t); ok {
		return si.(*structInfo), nil
	}
	si := &structInfo{
		byNum: make(map[protowire.Number]*fieldInfo),
		extra: -1,
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type == extraType {
			si.extra = i
			continue
		}
		tag := sf.Tag.Get("protobuf")
		if tag == "" || tag == "-" {
			continue
		}
		fi, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		fi.index = i
		si.fields = append(si.fields, fi)
	}
	sort.Slice(si.fields, func(i, j int) bool {
		return si.fields[i].num < si.fields[j].num
	})
	for i := range si.fields {
		si.byNum[si.fields[i].num] = &si.fields[i]
	}
	infoCache.Store(t, si)
	return si, nil
}

func parseTag(tag string) (fieldInfo, error) {
	var fi fieldInfo
	parts := strings.Split(tag, ",")
	if len(parts) < 3 {
		return fi, fmt.Errorf("bad protobuf tag %q", tag)
	}
	switch parts[0] {
	case "varint":
		fi.kind = kindVarint
	case "bytes":
		fi.kind = kindBytes
	default:
		return fi, fmt.Errorf("unsupported wire kind %q", parts[0])
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return fi, fmt.Errorf("bad field number in %q", tag)
	}
	fi.num = protowire.Number(n)
	fi.repeated = parts[2] == "rep"
	for _, p := range parts[3:] {
		if p == "packed" {
			fi.packed = true
		}
	}
	return fi, nil
}

func appendStruct(b []byte, v reflect.Value) ([]byte, error) {
	si, err := infoOf(v.Type())
	if err != nil {
		return nil, err
	}
	for _, fi := range si.fields {
		f := v.Field(fi.index)
		b, err = appendField(b, fi, f)
		if err != nil {
			return nil, err
		}
	}
	if si.extra >= 0 {
		b = appendExtra(b, v.Field(si.extra).Interface().(trezorpb.Extra))
	}
	return b, nil
}

func appendExtra(b []byte, extra trezorpb.Extra) []byte {
	nums := make([]uint32, 0, len(extra))
	for n := range extra {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		b = append(b, extra[n]...)
	}
	return b
}

func appendField(b []byte, fi fieldInfo, f reflect.Value) ([]byte, error) {
	switch f.Kind() {
	case reflect.Ptr:
		if f.IsNil() {
			return b, nil
		}
		return appendSingle(b, fi, f.Elem())
	case reflect.Slice:
		if f.Type().Elem().Kind() == reflect.Uint8 {
			// []byte is a scalar; nil means absent
			if f.IsNil() {
				return b, nil
			}
			return appendSingle(b, fi, f)
		}
		if fi.packed && fi.kind == kindVarint && f.Len() > 0 {
			var packed []byte
			for i := 0; i < f.Len(); i++ {
				packed = protowire.AppendVarint(packed, varintOf(f.Index(i)))
			}
			b = protowire.AppendTag(b, fi.num, protowire.BytesType)
			return protowire.AppendBytes(b, packed), nil
		}
		var err error
		for i := 0; i < f.Len(); i++ {
			e := f.Index(i)
			if e.Kind() == reflect.Ptr {
				if e.IsNil() {
					continue
				}
				e = e.Elem()
			}
			b, err = appendSingle(b, fi, e)
			if err != nil {
				return nil, err
			}
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported field type %s", f.Type())
	}
}

func appendSingle(b []byte, fi fieldInfo, v reflect.Value) ([]byte, error) {
	switch fi.kind {
	case kindVarint:
		b = protowire.AppendTag(b, fi.num, protowire.VarintType)
		return protowire.AppendVarint(b, varintOf(v)), nil
	case kindBytes:
		b = protowire.AppendTag(b, fi.num, protowire.BytesType)
		switch v.Kind() {
		case reflect.String:
			return protowire.AppendString(b, v.String()), nil
		case reflect.Slice:
			return protowire.AppendBytes(b, v.Bytes()), nil
		case reflect.Struct:
			inner, err := appendStruct(nil, v)
			if err != nil {
				return nil, err
			}
			return protowire.AppendBytes(b, inner), nil
		}
	}
	return nil, fmt.Errorf("unsupported value type %s", v.Type())
}

func varintOf(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Bool:
		return protowire.EncodeBool(v.Bool())
	case reflect.Int32, reflect.Int64, reflect.Int:
		return uint64(v.Int())
	default:
		return v.Uint()
	}
}

func decodeStruct(b []byte, v reflect.Value) error {
	si, err := infoOf(v.Type())
	if err != nil {
		return err
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return ErrMalformedData
		}
		fi := si.byNum[num]
		if fi == nil || !wireMatches(fi, typ) {
			m := protowire.ConsumeFieldValue(num, typ, b[n:])
			if m < 0 {
				return ErrMalformedData
			}
			if si.extra >= 0 {
				keepExtra(v.Field(si.extra), num, b[:n+m])
			}
			b = b[n+m:]
			continue
		}
		b = b[n:]
		f := v.Field(fi.index)

		if typ == protowire.BytesType && fi.kind == kindVarint {
			// packed repeated varints
			packed, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return ErrMalformedData
			}
			for len(packed) > 0 {
				x, k := protowire.ConsumeVarint(packed)
				if k < 0 {
					return ErrMalformedData
				}
				f.Set(reflect.Append(f, scalarOf(f.Type().Elem(), x)))
				packed = packed[k:]
			}
			b = b[m:]
			continue
		}

		switch typ {
		case protowire.VarintType:
			x, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return ErrMalformedData
			}
			setVarint(f, x)
			b = b[m:]
		case protowire.BytesType:
			data, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return ErrMalformedData
			}
			if err := setBytes(f, data); err != nil {
				return err
			}
			b = b[m:]
		}
	}
	return nil
}

func wireMatches(fi *fieldInfo, typ protowire.Type) bool {
	switch fi.kind {
	case kindVarint:
		return typ == protowire.VarintType || (fi.repeated && typ == protowire.BytesType)
	case kindBytes:
		return typ == protowire.BytesType
	}
	return false
}

func keepExtra(f reflect.Value, num protowire.Number, raw []byte) {
	if f.IsNil() {
		f.Set(reflect.MakeMap(extraType))
	}
	extra := f.Interface().(trezorpb.Extra)
	extra[uint32(num)] = append(extra[uint32(num)], raw...)
}

// scalarOf builds a value of type t (a varint-carried scalar) from x.
func scalarOf(t reflect.Type, x uint64) reflect.Value {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		v.SetBool(protowire.DecodeBool(x))
	case reflect.Int32:
		v.SetInt(int64(int32(x)))
	case reflect.Int64, reflect.Int:
		v.SetInt(int64(x))
	default:
		v.SetUint(x)
	}
	return v
}

func setVarint(f reflect.Value, x uint64) {
	switch f.Kind() {
	case reflect.Ptr:
		p := reflect.New(f.Type().Elem())
		p.Elem().Set(scalarOf(f.Type().Elem(), x))
		f.Set(p)
	case reflect.Slice:
		f.Set(reflect.Append(f, scalarOf(f.Type().Elem(), x)))
	}
}

func setBytes(f reflect.Value, data []byte) error {
	switch f.Kind() {
	case reflect.Ptr:
		elem := f.Type().Elem()
		switch elem.Kind() {
		case reflect.String:
			s := string(data)
			f.Set(reflect.ValueOf(&s))
			return nil
		case reflect.Struct:
			if f.IsNil() {
				f.Set(reflect.New(elem))
			}
			return decodeStruct(data, f.Elem())
		}
	case reflect.Slice:
		elem := f.Type().Elem()
		switch elem.Kind() {
		case reflect.Uint8:
			f.SetBytes(append([]byte{}, data...))
			return nil
		case reflect.String:
			f.Set(reflect.Append(f, reflect.ValueOf(string(data))))
			return nil
		case reflect.Slice:
			f.Set(reflect.Append(f, reflect.ValueOf(append([]byte{}, data...))))
			return nil
		case reflect.Ptr:
			p := reflect.New(elem.Elem())
			if err := decodeStruct(data, p.Elem()); err != nil {
				return err
			}
			f.Set(reflect.Append(f, p))
			return nil
		}
	}
	return fmt.Errorf("unsupported field type %s", f.Type())
}
