package user

type Module struct {
	svc     *service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(repo Repository) *Module {
	svc := NewService(repo)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
