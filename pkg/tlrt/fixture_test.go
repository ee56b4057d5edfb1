package tlrt

// The types and converters below are a small stand-in with the shape tlbind
// emits, kept here so the runtime tests need no generated package. The
// emitted binding itself is compiled and tested in internal/tonlib.
//
//	circle radius:double = Shape;           (0x1)
//	square side:double = Shape;             (0x2)
//	child name:string = Child;              (0x3)
//	holder id:int64 shape:Shape child:child tags:vector<string>
//	       hash:int256 grid:vector<vector<int64>> blob:bytes live:Bool = Holder;  (0x4)

type shape interface {
	Object
}

type circle struct{ Radius float64 }
type square struct{ Side float64 }
type child struct{ Name string }
type holder struct {
	Id    int64
	Shape shape
	Child *child
	Tags  []string
	Hash  [32]byte
	Grid  [][]int64
	Blob  []byte
	Live  bool
}

func (*circle) ConstructorID() int32 { return 0x1 }
func (*square) ConstructorID() int32 { return 0x2 }
func (*child) ConstructorID() int32  { return 0x3 }
func (*holder) ConstructorID() int32 { return 0x4 }

var shapeNames = map[string]int32{"Circle": 0x1, "Square": 0x2}

var shapeDispatch *Dispatch[shape]

func init() {
	shapeDispatch = NewDispatch("Shape", shapeNames, map[int32]Codec[shape]{
		0x1: Bind[shape](encodeCircle, decodeCircle),
		0x2: Bind[shape](encodeSquare, decodeSquare),
	})
}

func encodeShape(v shape) Value {
	return shapeDispatch.Encode(v)
}

func decodeShape(v Value) (shape, error) {
	return shapeDispatch.Decode(v)
}

func encodeCircle(from *circle) Value {
	if from == nil {
		return nil
	}
	to := Props{TypeKey: "Circle"}
	to["radius"] = EncodeDouble(from.Radius)
	return to
}

func decodeCircle(from Value) (*circle, error) {
	if from == nil {
		return nil, nil
	}
	_, props, err := Unwrap(from)
	if err != nil {
		return nil, err
	}
	to := new(circle)
	if err := DecodeField(props, "radius", &to.Radius, DecodeDouble); err != nil {
		return nil, err
	}
	return to, nil
}

func encodeSquare(from *square) Value {
	if from == nil {
		return nil
	}
	to := Props{TypeKey: "Square"}
	to["side"] = EncodeDouble(from.Side)
	return to
}

func decodeSquare(from Value) (*square, error) {
	if from == nil {
		return nil, nil
	}
	_, props, err := Unwrap(from)
	if err != nil {
		return nil, err
	}
	to := new(square)
	if err := DecodeField(props, "side", &to.Side, DecodeDouble); err != nil {
		return nil, err
	}
	return to, nil
}

func encodeChild(from *child) Value {
	if from == nil {
		return nil
	}
	to := Props{TypeKey: "Child"}
	to["name"] = EncodeString(from.Name)
	return to
}

func decodeChild(from Value) (*child, error) {
	if from == nil {
		return nil, nil
	}
	_, props, err := Unwrap(from)
	if err != nil {
		return nil, err
	}
	to := new(child)
	if err := DecodeField(props, "name", &to.Name, DecodeString); err != nil {
		return nil, err
	}
	return to, nil
}

func encodeHolder(from *holder) Value {
	if from == nil {
		return nil
	}
	to := Props{TypeKey: "Holder"}
	to["id"] = EncodeInt64(from.Id)
	if v := encodeShape(from.Shape); v != nil {
		to["shape"] = v
	}
	if v := encodeChild(from.Child); v != nil {
		to["child"] = v
	}
	to["tags"] = VectorEncoder(EncodeString)(from.Tags)
	to["hash"] = EncodeInt256(from.Hash)
	to["grid"] = VectorEncoder(VectorEncoder(EncodeInt64))(from.Grid)
	to["blob"] = EncodeBytes(from.Blob)
	to["live"] = EncodeBool(from.Live)
	return to
}

func decodeHolder(from Value) (*holder, error) {
	if from == nil {
		return nil, nil
	}
	_, props, err := Unwrap(from)
	if err != nil {
		return nil, err
	}
	to := new(holder)
	if err := DecodeField(props, "id", &to.Id, DecodeInt64); err != nil {
		return nil, err
	}
	if err := DecodeOptionalField(props, "shape", &to.Shape, decodeShape); err != nil {
		return nil, err
	}
	if err := DecodeOptionalField(props, "child", &to.Child, decodeChild); err != nil {
		return nil, err
	}
	if err := DecodeField(props, "tags", &to.Tags, VectorOf(DecodeString)); err != nil {
		return nil, err
	}
	if err := DecodeField(props, "hash", &to.Hash, DecodeInt256); err != nil {
		return nil, err
	}
	if err := DecodeField(props, "grid", &to.Grid, VectorOf(VectorOf(DecodeInt64))); err != nil {
		return nil, err
	}
	if err := DecodeField(props, "blob", &to.Blob, DecodeBytes); err != nil {
		return nil, err
	}
	if err := DecodeField(props, "live", &to.Live, DecodeBool); err != nil {
		return nil, err
	}
	return to, nil
}

// circleWrapper mirrors a generated wrapper type
type circleWrapper struct {
	props Props
}

func (w *circleWrapper) ClassName() string { return "Circle" }
func (w *circleWrapper) Props() Props      { return w.props }
