package validate

// Form tracks the state of a dynamic entry form: current values, per-field
// error messages, and which fields the user has visited. Fields are
// validated on blur and the entire form is re-validated on submit; the
// submit callback runs only when every field passes.
type Form struct {
	values   map[string]any
	errors   map[string]string
	touched  map[string]bool
	schema   map[string]Validator
	onSubmit func(values map[string]any) error
}

// NewForm builds a form from initial values, a field-to-validator schema,
// and a submit callback. Fields without a schema entry are always valid.
func NewForm(initial map[string]any, schema map[string]Validator, onSubmit func(values map[string]any) error) *Form {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Form{
		values:   values,
		errors:   make(map[string]string),
		touched:  make(map[string]bool),
		schema:   schema,
		onSubmit: onSubmit,
	}
}

// Change records a new value for a field. A field that has already been
// visited is re-validated immediately so its error tracks the input.
func (f *Form) Change(field string, value any) {
	f.values[field] = value
	if f.touched[field] {
		f.validateField(field)
	}
}

// Blur marks a field as visited and validates it.
func (f *Form) Blur(field string) {
	f.touched[field] = true
	f.validateField(field)
}

// Submit re-validates every schema field, marks them all visited, and
// invokes the submit callback only when no field carries an error.
func (f *Form) Submit() error {
	for field := range f.schema {
		f.touched[field] = true
		f.validateField(field)
	}
	if !f.IsValid() {
		return nil
	}
	if f.onSubmit == nil {
		return nil
	}
	return f.onSubmit(f.values)
}

// IsValid reports whether no field currently carries an error.
func (f *Form) IsValid() bool {
	for _, msg := range f.errors {
		if msg != "" {
			return false
		}
	}
	return true
}

// Value returns the current value of a field.
func (f *Form) Value(field string) any {
	return f.values[field]
}

// Error returns the current error message for a field, if any.
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// Touched reports whether the user has visited a field.
func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

func (f *Form) validateField(field string) {
	v, ok := f.schema[field]
	if !ok {
		return
	}
	msg := v(f.values[field])
	if msg == "" {
		delete(f.errors, field)
		return
	}
	f.errors[field] = msg
}
