package models

// SoftDelete carries the primary key and the active flag shared by every
// record that is never physically removed. Removal flips Active to false and
// restoring flips it back.
type SoftDelete struct {
	ID     int  `json:"id" gorm:"primaryKey"`
	Active bool `json:"activo" gorm:"column:active;not null;default:true"`
}

func (s *SoftDelete) GetID() int { return s.ID }

func (s *SoftDelete) SetID(id int) { s.ID = id }

func (s *SoftDelete) IsActive() bool { return s.Active }

func (s *SoftDelete) SetActive(active bool) { s.Active = active }
