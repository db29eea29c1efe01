package words

// SupplierError is a custom error type for word supplier errors
type SupplierError string

// Error implements the error interface
func (e SupplierError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SupplierError = "config cannot be nil"
	ErrNilInput         SupplierError = "input cannot be nil"
	ErrUnexpectedStatus SupplierError = "unexpected status from word API"
	ErrEmptyResponse    SupplierError = "word API returned no words"
)
