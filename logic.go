package coherent

// AND computes outputBit = inputBit1 AND inputBit2. If outputBit does
// not alias either input, this is a direct CCNOT against a |0⟩
// output. If the two inputs are the same bit, it degenerates to a
// plain SetBit/CNOT. If the output aliases one of the inputs, an
// ancilla qubit is composed in, used as the true output of the CCNOT,
// swapped into place, and disposed — the same three-way branch the
// classical logic family uses throughout.
func (u *CoherentUnit) AND(inputBit1, inputBit2, outputBit int) error {
	return u.classicalGate2(inputBit1, inputBit2, outputBit, func(a, b, out int) error {
		if err := u.SetBit(out, false); err != nil {
			return err
		}
		return u.CCNOT(a, b, out)
	})
}

// OR computes outputBit = inputBit1 OR inputBit2, via De Morgan's
// identity over AntiCCNOT: outputBit starts at |1⟩ and is anti-flipped
// only when both inputs are |0⟩.
func (u *CoherentUnit) OR(inputBit1, inputBit2, outputBit int) error {
	return u.classicalGate2(inputBit1, inputBit2, outputBit, func(a, b, out int) error {
		if err := u.SetBit(out, true); err != nil {
			return err
		}
		return u.AntiCCNOT(a, b, out)
	})
}

// XOR computes outputBit = inputBit1 XOR inputBit2.
func (u *CoherentUnit) XOR(inputBit1, inputBit2, outputBit int) error {
	if inputBit1 == inputBit2 {
		return u.SetBit(outputBit, false)
	}
	if outputBit == inputBit1 {
		return u.CNOT(inputBit2, outputBit)
	}
	if outputBit == inputBit2 {
		return u.CNOT(inputBit1, outputBit)
	}
	if err := u.SetBit(outputBit, false); err != nil {
		return err
	}
	if err := u.CNOT(inputBit1, outputBit); err != nil {
		return err
	}
	return u.CNOT(inputBit2, outputBit)
}

// classicalGate2 dispatches AND/OR's three-way branch structure: both
// inputs the same bit collapses to a constant/SetBit, the output
// aliasing an input routes through an ancilla, and the general case
// calls apply directly.
func (u *CoherentUnit) classicalGate2(inputBit1, inputBit2, outputBit int, apply func(a, b, out int) error) error {
	if inputBit1 == inputBit2 {
		// AND/OR of a bit with itself is that bit.
		if outputBit == inputBit1 {
			return nil
		}
		if err := u.SetBit(outputBit, false); err != nil {
			return err
		}
		return u.CNOT(inputBit1, outputBit)
	}
	if outputBit != inputBit1 && outputBit != inputBit2 {
		return apply(inputBit1, inputBit2, outputBit)
	}
	return u.throughAncilla(inputBit1, inputBit2, outputBit, apply)
}

// throughAncilla handles the case where outputBit aliases one of the
// two inputs: it composes in a fresh single-qubit ancilla initialized
// to |0⟩, applies the gate with the ancilla as the true output,
// swaps the ancilla's value into outputBit, then disposes the ancilla.
func (u *CoherentUnit) throughAncilla(inputBit1, inputBit2, outputBit int, apply func(a, b, out int) error) error {
	ancilla, err := New(1, WithBackend(u.backend), WithRand(u.rng))
	if err != nil {
		return err
	}
	composed := Compose(u, ancilla)
	*u = *composed

	ancillaIndex := u.qubitCount - 1
	if err := apply(inputBit1, inputBit2, ancillaIndex); err != nil {
		return err
	}
	if err := u.Swap(outputBit, ancillaIndex); err != nil {
		return err
	}
	return u.Dispose(ancillaIndex, 1)
}

// CLAND computes outputBit = inputBit AND classicalInput, where
// classicalInput is a plain Go bool rather than a qubit.
func (u *CoherentUnit) CLAND(inputBit int, classicalInput bool, outputBit int) error {
	if !classicalInput {
		return u.SetBit(outputBit, false)
	}
	if outputBit == inputBit {
		return nil
	}
	if err := u.SetBit(outputBit, false); err != nil {
		return err
	}
	return u.CNOT(inputBit, outputBit)
}

// CLOR computes outputBit = inputBit OR classicalInput.
func (u *CoherentUnit) CLOR(inputBit int, classicalInput bool, outputBit int) error {
	if classicalInput {
		return u.SetBit(outputBit, true)
	}
	if outputBit == inputBit {
		return nil
	}
	if err := u.SetBit(outputBit, false); err != nil {
		return err
	}
	return u.CNOT(inputBit, outputBit)
}

// CLXOR computes outputBit = inputBit XOR classicalInput.
func (u *CoherentUnit) CLXOR(inputBit int, classicalInput bool, outputBit int) error {
	if outputBit == inputBit {
		if classicalInput {
			return u.X(outputBit)
		}
		return nil
	}
	if err := u.SetBit(outputBit, false); err != nil {
		return err
	}
	if classicalInput {
		if err := u.X(outputBit); err != nil {
			return err
		}
	}
	return u.CNOT(inputBit, outputBit)
}

// ANDRange, ORRange, XORRange apply the corresponding classical logic
// gate bit-by-bit across a range, with independent input/output
// sub-registers of the same length.
func (u *CoherentUnit) ANDRange(inputStart1, inputStart2, outputStart, length int) error {
	return u.rangeGate3(inputStart1, inputStart2, outputStart, length, u.AND)
}

func (u *CoherentUnit) ORRange(inputStart1, inputStart2, outputStart, length int) error {
	return u.rangeGate3(inputStart1, inputStart2, outputStart, length, u.OR)
}

func (u *CoherentUnit) XORRange(inputStart1, inputStart2, outputStart, length int) error {
	return u.rangeGate3(inputStart1, inputStart2, outputStart, length, u.XOR)
}

func (u *CoherentUnit) rangeGate3(start1, start2, outStart, length int, gate func(a, b, out int) error) error {
	if err := u.checkRange(start1, length); err != nil {
		return err
	}
	if err := u.checkRange(start2, length); err != nil {
		return err
	}
	if err := u.checkRange(outStart, length); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		if err := gate(start1+i, start2+i, outStart+i); err != nil {
			return err
		}
	}
	return nil
}
