package protocol

// Touch is a read-only view of one 6-byte touch point:
//
//	0    active flag
//	1    touch id
//	2-3  x (LE uint16)
//	4-5  y (LE uint16)
type Touch struct {
	b []byte
}

// ViewTouch returns a read-only touch view over the first 6 bytes of b.
func ViewTouch(b []byte) (Touch, error) {
	if err := checkSize(b, TouchSize); err != nil {
		return Touch{}, err
	}
	return Touch{b: b[:TouchSize]}, nil
}

func (t Touch) Active() bool { return t.b[0] != 0 }
func (t Touch) ID() uint8    { return t.b[1] }
func (t Touch) X() uint16    { return getU16(t.b, 2) }
func (t Touch) Y() uint16    { return getU16(t.b, 4) }

// Bytes returns the underlying 6 bytes.
func (t Touch) Bytes() []byte { return t.b }

// TouchMut is a mutable touch view writing in place.
type TouchMut struct {
	Touch
}

// ViewTouchMut returns a mutable touch view over the first 6 bytes of b.
func ViewTouchMut(b []byte) (TouchMut, error) {
	t, err := ViewTouch(b)
	if err != nil {
		return TouchMut{}, err
	}
	return TouchMut{t}, nil
}

func (t TouchMut) SetActive(v bool) { putBool(t.b, 0, v) }
func (t TouchMut) SetID(id uint8) { t.b[1] = id }
func (t TouchMut) SetX(x uint16) { putU16(t.b, 2, x) }
func (t TouchMut) SetY(y uint16) { putU16(t.b, 4, y) }
