package services

import (
	"context"
	"net/url"
	stdsync "sync"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
)

// QuestionTab selects which slice of the community Q&A feed to list.
type QuestionTab int

const (
	TabAll QuestionTab = iota
	TabMine
	TabUnanswered
	TabForMe
)

// ForMeMode decides whose questions the for_me tab surfaces. Expert mode
// shows questions targeting the user's native language (questions they can
// answer); learner mode shows questions targeting the language they study.
type ForMeMode int

const (
	ForMeExpert ForMeMode = iota
	ForMeLearner
)

// QuestionService is the community Q&A surface.
type QuestionService interface {
	List(ctx context.Context, tab QuestionTab, self *models.User) ([]models.Question, error)
	Create(ctx context.Context, qc models.QuestionCreate) (*models.Question, error)
	Update(ctx context.Context, id string, qc models.QuestionCreate) (*models.Question, error)
	Delete(ctx context.Context, id string) error
	Answer(ctx context.Context, ac models.AnswerCreate) (*models.Answer, error)
	// ToggleSave flips the bookmark flag on q in place, optimistically, and
	// reconciles with the server's confirmed state.
	ToggleSave(ctx context.Context, q *models.Question) error
	// MarkHelpful bumps the answer's helpful counter only after the server
	// accepts the mark; a duplicate mark is silently ignored.
	MarkHelpful(ctx context.Context, a *models.Answer) error
	SetForMeMode(mode ForMeMode)
	ForMe() ForMeMode
}

type questionService struct {
	api *api.Client

	mu       stdsync.Mutex
	forMe    ForMeMode
	saves    map[string]*sync.Field[bool]
	helpfuls map[string]*sync.Field[int]
}

func NewQuestionService(client *api.Client) QuestionService {
	return &questionService{
		api:      client,
		saves:    make(map[string]*sync.Field[bool]),
		helpfuls: make(map[string]*sync.Field[int]),
	}
}

func (s *questionService) SetForMeMode(mode ForMeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forMe = mode
}

func (s *questionService) ForMe() ForMeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forMe
}

func (s *questionService) List(ctx context.Context, tab QuestionTab, self *models.User) ([]models.Question, error) {
	q := url.Values{}
	switch tab {
	case TabMine:
		q.Set("user_id", self.ID)
	case TabUnanswered:
		q.Set("unanswered", "true")
	case TabForMe:
		if s.ForMe() == ForMeExpert {
			q.Set("target_lang", self.NativeLanguageID)
		} else {
			q.Set("target_lang", self.TargetLanguageID)
		}
	}
	var questions []models.Question
	if err := s.api.Get(ctx, "/questions", q, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *questionService) Create(ctx context.Context, qc models.QuestionCreate) (*models.Question, error) {
	var created models.Question
	if err := s.api.Post(ctx, "/questions", qc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *questionService) Update(ctx context.Context, id string, qc models.QuestionCreate) (*models.Question, error) {
	var updated models.Question
	if err := s.api.Put(ctx, "/questions/"+id, qc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/questions/"+id)
}

func (s *questionService) Answer(ctx context.Context, ac models.AnswerCreate) (*models.Answer, error) {
	var a models.Answer
	if err := s.api.Post(ctx, "/answers", ac, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *questionService) ToggleSave(ctx context.Context, q *models.Question) error {
	field := s.saveField(q.ID)
	previous := q.IsSaved
	return field.Mutate(ctx, previous, !previous,
		func(v bool) { q.IsSaved = v },
		func(ctx context.Context) (bool, error) {
			var res models.SaveResult
			if err := s.api.Post(ctx, "/features/save/"+models.SavedTypeQuestion+"/"+q.ID, nil, &res); err != nil {
				return false, err
			}
			return res.IsSaved, nil
		})
}

func (s *questionService) MarkHelpful(ctx context.Context, a *models.Answer) error {
	field := s.helpfulField(a.ID)
	next := a.HelpfulCount + 1
	return field.Confirmed(ctx,
		func(n int) {
			a.HelpfulCount = n
			a.IsHelpful = true
		},
		func(ctx context.Context) (int, bool, error) {
			var res models.HelpfulResult
			if err := s.api.Post(ctx, "/features/helpful/"+a.ID, nil, &res); err != nil {
				return 0, false, err
			}
			return next, res.Accepted(), nil
		})
}

func (s *questionService) saveField(id string) *sync.Field[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.saves[id]
	if !ok {
		f = &sync.Field[bool]{}
		s.saves[id] = f
	}
	return f
}

func (s *questionService) helpfulField(id string) *sync.Field[int] {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.helpfuls[id]
	if !ok {
		f = &sync.Field[int]{}
		s.helpfuls[id] = f
	}
	return f
}
