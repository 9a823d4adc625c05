package ports

// LocalStorage es el puerto del almacenamiento local duradero del cliente
// (análogo del localStorage del navegador). Lo implementa
// infrastructure/localstore; en tests, un stub en memoria.
type LocalStorage interface {
	// Get deserializa el valor de la clave en v; (false, nil) si no existe.
	Get(key string, v any) (bool, error)
	// Set serializa v bajo la clave, sin escrituras parciales visibles.
	Set(key string, v any) error
	// Delete elimina la clave; borrar una inexistente no es error.
	Delete(key string) error
}
