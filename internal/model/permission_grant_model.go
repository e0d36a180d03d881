package model

// PermissionGrant mirrors the externally owned grant table. This subsystem
// never writes it.
type PermissionGrant struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Role        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_grants_role_resource_action,priority:1"`
	ResourceKey string `gorm:"type:varchar(150);not null;uniqueIndex:idx_grants_role_resource_action,priority:2"`
	Action      string `gorm:"type:varchar(20);not null;uniqueIndex:idx_grants_role_resource_action,priority:3"`
}

func (PermissionGrant) TableName() string {
	return "permission_grants"
}
