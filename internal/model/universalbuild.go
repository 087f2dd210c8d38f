package model

// MarshalJSON for CopyEntry serializes as a 2-element array (from, to),
// matching spec.md's "(src,dst)" tuple shape.
func (c CopyEntry) MarshalJSON() ([]byte, error) {
	return marshalPair(c.From, c.To)
}

func (c *CopyEntry) UnmarshalJSON(b []byte) error {
	from, to, err := unmarshalPair(b)
	if err != nil {
		return err
	}
	c.From, c.To = from, to
	return nil
}
