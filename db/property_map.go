package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// PropertyMap is a type to use to store JSON
// http://coussej.github.io/2016/02/16/Handling-JSONB-in-Go-Structs/
type PropertyMap map[string]interface{}

func (p PropertyMap) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}

	j, err := json.Marshal(p)
	return string(j), err
}

func (p *PropertyMap) Scan(src interface{}) error {
	source, err := sourceBytes(src)
	if err != nil {
		return err
	}

	if len(source) == 0 {
		*p = PropertyMap{}
		return nil
	}

	var i interface{}
	err = json.Unmarshal(source, &i)
	if err != nil {
		return err
	}

	if i == nil {
		*p = PropertyMap{}
		return nil
	}

	m, ok := i.(map[string]interface{})
	if !ok {
		return errors.New("Type assertion .(map[string]interface{}) failed.")
	}

	*p = m
	return nil
}

// StringList is stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	j, err := json.Marshal([]string(l))
	return string(j), err
}

func (l *StringList) Scan(src interface{}) error {
	source, err := sourceBytes(src)
	if err != nil {
		return err
	}

	if len(source) == 0 {
		*l = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(source, &list); err != nil {
		return err
	}

	*l = list
	return nil
}

func sourceBytes(src interface{}) ([]byte, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return s, nil
	case string:
		return []byte(s), nil
	default:
		return nil, errors.New("Type assertion .([]byte) failed.")
	}
}
