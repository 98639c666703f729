// Package pronunciation models word to pronunciation datasets as they appear
// in the raw and cleaned JSON sources. It provides an order-preserving
// Dataset, the Scalar / Variants value shapes, JSON decoding and encoding,
// and the error taxonomy shared by the pipeline stages.
package pronunciation
