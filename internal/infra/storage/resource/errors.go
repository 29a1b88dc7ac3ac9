package resource

import "errors"

var (
	// ErrUnknownResourceType возвращается при неизвестном типе ресурса
	ErrUnknownResourceType = errors.New("resource.repository: unknown resource type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")
)
