package service

import (
	"log"
	"time"

	"hallmate/internal/db"
	"hallmate/internal/entities"
	httperrors "hallmate/internal/errors"
)

type HallStore interface {
	List() ([]db.Hall, error)
	GetByName(name string) (*db.Hall, error)
	GetByNameExcluding(name string, id int) (*db.Hall, error)
	Insert(h *db.Hall) (int, error)
	Update(h *db.Hall) (*db.Hall, error)
	Delete(id int) (bool, error)
}

// defaultHalls seeds the catalog the first time the list is requested on an
// empty database.
var defaultHalls = []db.Hall{
	{
		Name:        "Gallery Hall 1",
		Description: "A spacious hall ideal for large exhibitions and conferences, with modern audio-visual equipment. Located in Block C, 1st Floor, Capacity: 100-120 people.",
		Capacity:    "100-120 people",
		Location:    "Block C, 1st Floor",
		Image:       "/halls/Galleryhall1.jpg",
	},
	{
		Name:        "Gallery Hall 2",
		Description: "Perfect for medium-sized events, seminars, and workshops. Equipped with comfortable seating. Located in Block C, 1st Floor, Capacity: 100-120 people.",
		Capacity:    "100-120 people",
		Location:    "Block C, 1st Floor",
		Image:       "/halls/Galleryhall2.jpg",
	},
	{
		Name:        "Board Room",
		Description: "Small and cozy, suitable for private meetings, presentations, and small gatherings. Located in Block B, Ground Floor, Capacity: 30-50 people.",
		Capacity:    "30-50 people",
		Location:    "Block B, Ground Floor",
		Image:       "/halls/Board room.jpg",
	},
	{
		Name:        "B 05",
		Description: "A large, state-of-the-art conference hall with multiple projectors and seating for up to 200. Ideal for major university events. Located in Main Building, 2nd Floor.",
		Capacity:    "Up to 200 people",
		Location:    "Main Building, 2nd Floor",
		Image:       "/halls/B 05.jpg",
	},
}

type HallService struct {
	store HallStore
}

func NewHallService(store HallStore) *HallService {
	return &HallService{store: store}
}

// ListHalls returns the hall catalog, seeding the default campus halls when
// the catalog is empty.
func (s *HallService) ListHalls() ([]db.Hall, error) {
	halls, err := s.store.List()
	if err != nil {
		log.Printf("Error listing halls: %v", err)
		return nil, httperrors.Internal("Internal server error")
	}
	if len(halls) > 0 {
		return halls, nil
	}

	for _, h := range defaultHalls {
		hall := h
		hall.CreatedAt = time.Now().UTC()
		if _, err := s.store.Insert(&hall); err != nil {
			log.Printf("Error seeding default hall %q: %v", hall.Name, err)
			return nil, httperrors.Internal("Internal server error")
		}
	}

	halls, err = s.store.List()
	if err != nil {
		log.Printf("Error listing halls after seeding: %v", err)
		return nil, httperrors.Internal("Internal server error")
	}
	return halls, nil
}

func (s *HallService) CreateHall(req *entities.HallRequest) (*db.Hall, error) {
	if req.Name == "" || req.Description == "" || req.Capacity == "" || req.Location == "" {
		return nil, httperrors.Validation("Missing required fields: name, description, capacity, or location")
	}

	existing, err := s.store.GetByName(req.Name)
	if err != nil {
		log.Printf("Error checking hall name %q: %v", req.Name, err)
		return nil, httperrors.Internal("Internal server error")
	}
	if existing != nil {
		return nil, httperrors.Conflict("Hall with this name already exists")
	}

	hall := &db.Hall{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Image:       req.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.store.Insert(hall); err != nil {
		log.Printf("Error inserting hall %q: %v", req.Name, err)
		return nil, httperrors.Internal("Internal server error")
	}
	return hall, nil
}

func (s *HallService) UpdateHall(req *entities.HallRequest) (*db.Hall, error) {
	if req.ID <= 0 {
		return nil, httperrors.Validation("Hall ID is required")
	}
	if req.Name == "" || req.Description == "" || req.Capacity == "" || req.Location == "" {
		return nil, httperrors.Validation("Missing required fields: name, description, capacity, or location")
	}

	existing, err := s.store.GetByNameExcluding(req.Name, req.ID)
	if err != nil {
		log.Printf("Error checking hall name %q: %v", req.Name, err)
		return nil, httperrors.Internal("Internal server error")
	}
	if existing != nil {
		return nil, httperrors.Conflict("Another hall with this name already exists")
	}

	updated, err := s.store.Update(&db.Hall{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Image:       req.Image,
	})
	if err != nil {
		log.Printf("Error updating hall %d: %v", req.ID, err)
		return nil, httperrors.Internal("Internal server error")
	}
	if updated == nil {
		return nil, httperrors.NotFound("Hall not found")
	}
	return updated, nil
}

func (s *HallService) DeleteHall(id int) error {
	if id <= 0 {
		return httperrors.Validation("Hall ID is required")
	}
	deleted, err := s.store.Delete(id)
	if err != nil {
		log.Printf("Error deleting hall %d: %v", id, err)
		return httperrors.Internal("Internal server error")
	}
	if !deleted {
		return httperrors.NotFound("Hall not found")
	}
	return nil
}
