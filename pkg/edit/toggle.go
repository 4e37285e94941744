package edit

import (
	"context"
	"os"

	"github.com/yaklabco/togl/pkg/fsutil"
	"github.com/yaklabco/togl/pkg/marker"
)

// ToggleComment toggles the line-comment marker on the zero-indexed line of
// the file at path. The marker family is chosen by file extension. A line
// already starting with the marker's tag at column zero is uncommented;
// anything else, including an indented marker, gets the tag prepended.
func (e *Editor) ToggleComment(ctx context.Context, path string, line int) error {
	src, err := fsutil.ResolveSource(ctx, path)
	if err != nil {
		return err
	}

	kind, err := marker.ForPath(src.Path)
	if err != nil {
		return err
	}

	return e.toggleTag(ctx, src, line, kind)
}

// ToggleDocstring toggles the "///" doc-comment marker on the given line.
// Unlike ToggleComment it applies regardless of file extension.
func (e *Editor) ToggleDocstring(ctx context.Context, path string, line int) error {
	src, err := fsutil.ResolveSource(ctx, path)
	if err != nil {
		return err
	}

	return e.toggleTag(ctx, src, line, marker.TripleSlash)
}

func (e *Editor) toggleTag(ctx context.Context, src *fsutil.Source, line int, kind marker.Kind) error {
	return e.editLine(ctx, src, line, func(f *os.File, off int64) (transform, error) {
		tagged, err := hasTag(f, off, kind)
		if err != nil {
			return transform{}, err
		}

		if tagged {
			e.logger.Debug("removing comment marker", "path", src.Path, "line", line, "marker", kind.String())
			return transform{kind: transformStrip, skip: kind.TagLen()}, nil
		}
		e.logger.Debug("adding comment marker", "path", src.Path, "line", line, "marker", kind.String())
		return transform{kind: transformPrepend, data: kind.Tag()}, nil
	})
}
