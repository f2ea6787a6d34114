package binary

import "testing"

func TestWriteU32_LEB128(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"single byte", 127, []byte{0x7f}},
		{"two bytes", 128, []byte{0x80, 0x01}},
		{"170", 170, []byte{0xaa, 0x01}},
		{"large", 624485, []byte{0xe5, 0x8e, 0x26}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteU32(tt.in)
			got := w.Bytes()
			if string(got) != string(tt.want) {
				t.Errorf("WriteU32(%d) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteS32_LEB128(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"minus one", -1, []byte{0x7f}},
		{"64", 64, []byte{0xc0, 0x00}},
		{"-64", -64, []byte{0x40}},
		{"-128", -128, []byte{0x80, 0x7f}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteS32(tt.in)
			got := w.Bytes()
			if string(got) != string(tt.want) {
				t.Errorf("WriteS32(%d) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteF32(t *testing.T) {
	w := NewWriter()
	w.WriteF32(1.0)
	want := []byte{0x00, 0x00, 0x80, 0x3f}
	if string(w.Bytes()) != string(want) {
		t.Errorf("WriteF32(1.0) = %x, want %x", w.Bytes(), want)
	}
}

func TestWriteName(t *testing.T) {
	w := NewWriter()
	w.WriteName("add")
	want := []byte{0x03, 'a', 'd', 'd'}
	if string(w.Bytes()) != string(want) {
		t.Errorf("WriteName(\"add\") = %x, want %x", w.Bytes(), want)
	}
}

func TestVec(t *testing.T) {
	w := NewWriter()
	Vec(w, []byte{0x7f, 0x7f}, func(p *Writer, b byte) { p.Byte(b) })
	want := []byte{0x02, 0x7f, 0x7f}
	if string(w.Bytes()) != string(want) {
		t.Errorf("Vec = %x, want %x", w.Bytes(), want)
	}
}

func TestSection(t *testing.T) {
	w := NewWriter()
	Section(w, 0x01, []byte{0xaa, 0xbb})
	want := []byte{0x01, 0x02, 0xaa, 0xbb}
	if string(w.Bytes()) != string(want) {
		t.Errorf("Section = %x, want %x", w.Bytes(), want)
	}
}

func TestWriter_GrowBeyondInitialCapacity(t *testing.T) {
	w := NewWriter()
	for i := 0; i < 1000; i++ {
		w.Byte(byte(i))
	}
	if w.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", w.Len())
	}
	got := w.Bytes()
	for i := 0; i < 1000; i++ {
		if got[i] != byte(i) {
			t.Fatalf("byte %d = %x, want %x", i, got[i], byte(i))
		}
	}
}
