package catalog

import "errors"

var (
	// ErrDanglingReference возвращается, когда набор данных ссылается на несуществующую запись
	ErrDanglingReference = errors.New("catalog: dangling reference")

	// ErrDuplicateID возвращается при повторяющемся идентификаторе
	ErrDuplicateID = errors.New("catalog: duplicate id")

	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("catalog: not found")
)
