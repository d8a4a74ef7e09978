package reduction

// SVPRepeat returns the number of SVP-oracle calls made by BKZ-β on a
// d-dimensional lattice: 8d tours' worth when β < d, a single call when the
// block covers the whole lattice. Loosely based on experiments in [PhD:Chen13].
func SVPRepeat(beta, d int) int {
	if beta < d {
		return 8 * d
	}
	return 1
}

// LLL returns the cost of LLL on a d-dimensional basis with B-bit entries,
// following [AC:CheNgu11]. B = 0 means the bit size is unknown and the
// B² factor is dropped.
func LLL(d, B int) float64 {
	fd := float64(d)
	if B != 0 {
		fb := float64(B)
		return fd * fd * fd * fb * fb
	}
	return fd * fd * fd
}
