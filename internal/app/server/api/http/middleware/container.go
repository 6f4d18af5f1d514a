package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает middleware операций для одной группы хендлеров.
type Container struct {
	huma.Middlewares
}

// NewContainer создает пустой контейнер.
func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add добавляет mws в порядке вызова.
func (mc *Container) Add(mws ...func(ctx huma.Context, next func(huma.Context))) *Container {
	mc.Middlewares = append(mc.Middlewares, mws...)
	return mc
}

// GetAllAndClear возвращает собранные middleware и очищает контейнер
// для следующей группы.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
