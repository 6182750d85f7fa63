package catalog

type Module struct {
	Svc Service
	Hdl *Handler
}
