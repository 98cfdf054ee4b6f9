package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrDraftExists возвращается при повторном создании черновика с тем же ID
	ErrDraftExists = errors.New("draft.repository: draft already exists")

	// ErrVersionConflict возвращается, когда черновик изменён параллельно
	ErrVersionConflict = errors.New("draft.repository: version conflict")

	// ErrEncode возвращается при ошибке сериализации черновика
	ErrEncode = errors.New("draft.repository: failed to encode draft")

	// ErrDecode возвращается при ошибке десериализации черновика
	ErrDecode = errors.New("draft.repository: failed to decode draft")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("draft.repository: storage error")
)
