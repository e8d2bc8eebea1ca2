package checksum

// bsdSum 实现经典 BSD sum 校验：
// 16 位状态循环右移一位后加当前字节，截断到 16 位。
// 状态本身只有 16 位，摘要仍按 4 字节大端输出，与其他 32 位算法对齐。
type bsdSum struct {
	state uint32
}

func newBSDSum() *bsdSum {
	return &bsdSum{}
}

func (d *bsdSum) Write(p []byte) (int, error) {
	state := d.state
	for _, b := range p {
		state = ((state >> 1) + ((state & 1) << 15) + uint32(b)) & 0xffff
	}
	d.state = state
	return len(p), nil
}

func (d *bsdSum) Sum(in []byte) []byte {
	s := d.state
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *bsdSum) Reset() {
	d.state = 0
}

func (d *bsdSum) Size() int {
	return 4
}

func (d *bsdSum) BlockSize() int {
	return 1
}

// Sum32 返回当前 16 位校验值，便于测试直接断言。
func (d *bsdSum) Sum32() uint32 {
	return d.state
}
