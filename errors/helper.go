package errors

func is(source Error, target error) bool {
	if err, ok := target.(Error); ok {
		return source.Error() == err.Error()
	}
	return false
}

func as(source Error, target any) bool {
	if err, ok := target.(*Error); ok {
		if source.Error() == (*err).Error() {
			*err = source
			return true
		}
	}
	return false
}
