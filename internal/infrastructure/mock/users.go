package mock

import "github.com/jhoicas/bizflow-client/internal/domain/entity"

// seedUsers es la plantilla de usuarios del panel de administración demo.
func seedUsers() []entity.User {
	return []entity.User{
		{ID: "admin-1", Name: "Alex Johnson", Email: "alex@bizflow.io", Role: entity.RoleAdmin, Avatar: avatarFor("alex@bizflow.io")},
		{ID: "u-2", Name: "Maria Garcia", Email: "maria@bizflow.io", Role: entity.RoleUser, Avatar: avatarFor("maria@bizflow.io")},
		{ID: "u-3", Name: "Sam Lee", Email: "sam@bizflow.io", Role: entity.RoleUser, Avatar: avatarFor("sam@bizflow.io")},
	}
}
