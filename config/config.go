package config

import "reflect"

func allSet(xs ...string) bool {
	for _, x := range xs {
		if x == "" {
			return false
		}
	}

	return true
}

func allBlankOrAllSet(xs ...string) bool {
	var blanks int
	for _, x := range xs {
		if x == "" {
			blanks++
		}
	}

	return blanks == 0 || blanks == len(xs)
}

// isZero follows the emptiness rules of encoding/json's omitempty.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// merge copies every non-zero leaf of src onto dst.
func merge(dst, src reflect.Value) {
	if !src.IsValid() {
		return
	}

	if src.Kind() == reflect.Struct {
		for i := 0; i < dst.NumField(); i++ {
			merge(dst.Field(i), src.Field(i))
		}
		return
	}

	if dst.CanSet() && !isZero(src) {
		dst.Set(src)
	}
}
