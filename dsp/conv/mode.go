package conv

// Mode selects the output extent of a convolution.
type Mode int

const (
	// ModeFull returns every output position with nonzero overlap,
	// length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output of length max(len(a), len(b)), centered with
	// respect to the full result. When the total number of trimmed samples
	// is odd, the extra sample is trimmed from the leading side.
	ModeSame

	// ModeValid returns only positions where the shorter operand overlaps
	// the longer one completely, length max(len(a), len(b))-min(len(a), len(b))+1.
	ModeValid
)

// String returns the conventional lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "invalid"
	}
}

// known reports whether m is one of the defined modes.
func (m Mode) known() bool {
	return m == ModeFull || m == ModeSame || m == ModeValid
}

// span returns the start offset and length of the mode's portion of a full
// convolution result computed from operand lengths n and k.
func (m Mode) span(n, k int) (start, length int) {
	full := n + k - 1
	switch m {
	case ModeSame:
		length = max(n, k)
		// Trim is split evenly; the leading side absorbs the odd sample.
		return (full - length + 1) / 2, length
	case ModeValid:
		return min(n, k) - 1, max(n, k) - min(n, k) + 1
	default:
		return 0, full
	}
}

// trim extracts the mode's portion of a full convolution result computed
// from operands of lengths n and k. The returned slice shares the backing
// array of full.
func (m Mode) trim(full []float64, n, k int) []float64 {
	start, length := m.span(n, k)
	return full[start : start+length]
}
