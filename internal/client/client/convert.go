package client

import (
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	pb "github.com/dmitrijs2005/wellsync/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Pulled rows carry the server's update time in SyncMeta.UpdatedAt so the
// caller can advance its pull cursor.

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTimestamp keeps unset timestamps as the zero time.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func moodToWire(m models.Mood) *pb.Mood {
	return &pb.Mood{
		RequestId:  m.RequestID,
		Mood:       m.Mood,
		Intensity:  int32(m.Intensity),
		Note:       m.Note,
		Tags:       m.Tags,
		RecordedAt: toTimestamp(m.RecordedAt),
	}
}

func moodFromWire(w *pb.Mood) models.Mood {
	return models.Mood{
		SyncMeta:   models.SyncMeta{ServerID: w.GetId(), RequestID: w.GetRequestId(), UpdatedAt: fromTimestamp(w.GetUpdatedAt())},
		Mood:       w.GetMood(),
		Intensity:  int(w.GetIntensity()),
		Note:       w.GetNote(),
		Tags:       w.GetTags(),
		RecordedAt: fromTimestamp(w.GetRecordedAt()),
	}
}

func progressToWire(p models.ExerciseProgress) *pb.Progress {
	return &pb.Progress{
		RequestId:       p.RequestID,
		ExerciseId:      p.ExerciseID,
		DurationSeconds: int32(p.DurationSeconds),
		Rating:          int32(p.Rating),
		Note:            p.Note,
		CompletedAt:     toTimestamp(p.CompletedAt),
	}
}

func progressFromWire(w *pb.Progress) models.ExerciseProgress {
	return models.ExerciseProgress{
		SyncMeta:        models.SyncMeta{ServerID: w.GetId(), RequestID: w.GetRequestId(), UpdatedAt: fromTimestamp(w.GetUpdatedAt())},
		ExerciseID:      w.GetExerciseId(),
		DurationSeconds: int(w.GetDurationSeconds()),
		Rating:          int(w.GetRating()),
		Note:            w.GetNote(),
		CompletedAt:     fromTimestamp(w.GetCompletedAt()),
	}
}

func exerciseFromWire(w *pb.Exercise) models.Exercise {
	return models.Exercise{
		ServerID:        w.GetId(),
		Title:           w.GetTitle(),
		Category:        w.GetCategory(),
		DurationMinutes: int(w.GetDurationMinutes()),
		Description:     w.GetDescription(),
	}
}

func sessionFromWire(w *pb.Session) models.ChatSession {
	return models.ChatSession{
		SyncMeta: models.SyncMeta{
			ServerID:  w.GetId(),
			RequestID: w.GetRequestId(),
			CreatedAt: fromTimestamp(w.GetCreatedAt()),
			UpdatedAt: fromTimestamp(w.GetUpdatedAt()),
		},
		ChatType:       models.ChatType(w.GetChatType()),
		Title:          w.GetTitle(),
		ConversationID: w.GetConversationId(),
	}
}

func messageFromWire(w *pb.Message) models.ChatMessage {
	created := fromTimestamp(w.GetCreatedAt())
	return models.ChatMessage{
		SyncMeta: models.SyncMeta{ServerID: w.GetId(), RequestID: w.GetRequestId(), CreatedAt: created, UpdatedAt: created},
		Role:     models.Role(w.GetRole()),
		Content:  w.GetContent(),
	}
}

func mapSlice[W, M any](in []W, f func(W) M) []M {
	out := make([]M, 0, len(in))
	for _, w := range in {
		out = append(out, f(w))
	}
	return out
}
