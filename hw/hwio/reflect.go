package hwio

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

type bankReg struct {
	regPtr any
	offset uint16
}

type regTag struct {
	bank      int
	offset    int // -1 if not part of any bank
	size      int
	vsize     int
	reset     uint8
	rwmask    uint8
	readonly  bool
	writeonly bool
	rcb, wcb  string
	pcb       string
}

func parseTag(field string, tag string) (regTag, error) {
	rt := regTag{offset: -1, rwmask: 0xFF}
	for _, opt := range strings.Split(tag, ",") {
		key, val, hasVal := strings.Cut(strings.TrimSpace(opt), "=")
		num := func() (int, error) {
			n, err := strconv.ParseInt(val, 0, 64)
			if err != nil {
				return 0, errors.Wrapf(err, "field %s: invalid %s", field, key)
			}
			return int(n), nil
		}

		var err error
		switch key {
		case "bank":
			rt.bank, err = num()
		case "offset":
			rt.offset, err = num()
		case "size":
			rt.size, err = num()
		case "vsize":
			rt.vsize, err = num()
		case "reset":
			var n int
			n, err = num()
			rt.reset = uint8(n)
		case "rwmask":
			var n int
			n, err = num()
			rt.rwmask = uint8(n)
		case "readonly":
			rt.readonly = true
		case "writeonly":
			rt.writeonly = true
		case "rcb", "wcb", "pcb":
			name := val
			if !hasVal {
				prefix := map[string]string{"rcb": "Read", "wcb": "Write", "pcb": "Peek"}[key]
				name = prefix + strings.ToUpper(field)
			}
			switch key {
			case "rcb":
				rt.rcb = name
			case "wcb":
				rt.wcb = name
			case "pcb":
				rt.pcb = name
			}
		case "":
		default:
			return rt, errors.Errorf("field %s: unknown hwio option %q", field, key)
		}
		if err != nil {
			return rt, err
		}
	}
	return rt, nil
}

func (rt regTag) flags() RWFlags {
	var f RWFlags
	if rt.readonly {
		f |= ReadOnlyFlag
	}
	if rt.writeonly {
		f |= WriteOnlyFlag
	}
	return f
}

// method returns the method of bank with the given name, converted to the
// callback type T.
func method[T any](bank reflect.Value, field, name string) (T, error) {
	var zero T
	m := bank.MethodByName(name)
	if !m.IsValid() {
		return zero, errors.Errorf("field %s: method %s not found on %s", field, name, bank.Type())
	}
	cb, ok := m.Interface().(T)
	if !ok {
		return zero, errors.Errorf("field %s: method %s has type %s, want %T", field, name, m.Type(), zero)
	}
	return cb, nil
}

// InitRegs initializes all Mem, Reg8 and Device fields of the structure
// pointed to by bank, according to their "hwio" struct tags:
//
//	bank=N          bank number (default 0), see Table.MapBank
//	offset=0xNN     offset of the register within its bank
//	size=0xNN       Mem: allocated size. Device: mapped size
//	vsize=0xNN      Mem: mapped size, the memory is mirrored over it
//	reset=0xNN      Reg8: initial value
//	rwmask=0xNN     Reg8: bits writable from the bus (default 0xFF)
//	readonly        writes are rejected
//	writeonly       reads return 0
//	rcb[=Name]      read callback, default method name Read<FIELD>
//	wcb[=Name]      write callback, default method name Write<FIELD>
//	pcb[=Name]      peek callback, default method name Peek<FIELD>
func InitRegs(bank any) error {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("hwio: InitRegs requires a pointer to struct, got %T", bank)
	}
	st := v.Elem()
	for i := range st.NumField() {
		sf := st.Type().Field(i)
		tag, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		rt, err := parseTag(sf.Name, tag)
		if err != nil {
			return err
		}

		switch reg := st.Field(i).Addr().Interface().(type) {
		case *Reg8:
			if err := initReg8(v, sf.Name, reg, rt); err != nil {
				return err
			}
		case *Mem:
			if err := initMem(v, sf.Name, reg, rt); err != nil {
				return err
			}
		case *Device:
			if err := initDevice(v, sf.Name, reg, rt); err != nil {
				return err
			}
		default:
			return errors.Errorf("hwio: field %s has unsupported type %s", sf.Name, sf.Type)
		}
	}
	return nil
}

// MustInitRegs is like InitRegs but panics on error.
func MustInitRegs(bank any) {
	if err := InitRegs(bank); err != nil {
		panic(err)
	}
}

func initReg8(bank reflect.Value, name string, reg *Reg8, rt regTag) (err error) {
	reg.Name = name
	reg.Value = rt.reset
	reg.RoMask = ^rt.rwmask
	reg.Flags = rt.flags()
	if rt.rcb != "" {
		if reg.ReadCb, err = method[func(uint8) uint8](bank, name, rt.rcb); err != nil {
			return err
		}
	}
	if rt.pcb != "" {
		if reg.PeekCb, err = method[func(uint8) uint8](bank, name, rt.pcb); err != nil {
			return err
		}
	}
	if rt.wcb != "" {
		if reg.WriteCb, err = method[func(uint8, uint8)](bank, name, rt.wcb); err != nil {
			return err
		}
	}
	return nil
}

func initMem(bank reflect.Value, name string, m *Mem, rt regTag) (err error) {
	m.Name = name
	if rt.size != 0 {
		m.Data = make([]byte, rt.size)
	}
	if rt.vsize != 0 {
		m.VSize = rt.vsize
	} else {
		m.VSize = len(m.Data)
	}
	if rt.readonly {
		m.Flags |= MemFlag8ReadOnly
	}
	if rt.wcb != "" {
		if m.WriteCb, err = method[func(uint16, uint8)](bank, name, rt.wcb); err != nil {
			return err
		}
	}
	return nil
}

func initDevice(bank reflect.Value, name string, d *Device, rt regTag) (err error) {
	d.Name = name
	d.Size = rt.size
	d.Flags = rt.flags()
	if rt.rcb != "" {
		if d.ReadCb, err = method[func(uint16) uint8](bank, name, rt.rcb); err != nil {
			return err
		}
	}
	if rt.pcb != "" {
		if d.PeekCb, err = method[func(uint16) uint8](bank, name, rt.pcb); err != nil {
			return err
		}
	}
	if rt.wcb != "" {
		if d.WriteCb, err = method[func(uint16, uint8)](bank, name, rt.wcb); err != nil {
			return err
		}
	}
	return nil
}

func bankGetRegs(bank any, bankNum int) ([]bankReg, error) {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("hwio: bank must be a pointer to struct, got %T", bank)
	}
	st := v.Elem()

	var regs []bankReg
	for i := range st.NumField() {
		sf := st.Type().Field(i)
		tag, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		rt, err := parseTag(sf.Name, tag)
		if err != nil {
			return nil, err
		}
		if rt.offset < 0 || rt.bank != bankNum {
			continue
		}
		regs = append(regs, bankReg{
			regPtr: st.Field(i).Addr().Interface(),
			offset: uint16(rt.offset),
		})
	}
	if len(regs) == 0 {
		return nil, errors.Errorf("hwio: no register in bank %d of %T", bankNum, bank)
	}
	return regs, nil
}
