// Package processor drives the organize pipeline over real files: it reads
// a Python source, extracts the leading import block, runs the organizer
// and splices the result back.
package processor

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-group/pkg/organizer"
	"github.com/siyuan-infoblox/py-imports-group/pkg/settings"
	"github.com/siyuan-infoblox/py-imports-group/pkg/utils"
)

// Config controls how files are processed.
type Config struct {
	InPlace bool // whether to modify files in place
}

// Processor applies one resolved configuration to many files.
type Processor struct {
	config    Config
	organizer *organizer.Organizer
	log       *zap.Logger
}

// New creates a processor over resolved settings.
func New(s *settings.Settings, config Config, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		config:    config,
		organizer: organizer.New(s),
		log:       log,
	}
}

// OrganizeSource reorganizes the leading import block of a source text and
// returns the full rewritten source. Sources without imports are returned
// unchanged.
func (p *Processor) OrganizeSource(src, filePackage string) (string, error) {
	lines := strings.Split(src, "\n")
	block, err := imports.ScanBlock(lines)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}
	if block.Empty() {
		return src, nil
	}

	region := p.organizer.Format(block.Statements, filePackage)

	// Normalize the blank lines after the region so repeated runs converge.
	tail := lines[block.End:]
	consumed := 0
	for consumed < len(tail) && strings.TrimSpace(tail[consumed]) == "" {
		consumed++
	}
	tail = tail[consumed:]

	followedByCode := len(tail) > 0
	blankAfter := p.organizer.LinesAfter(followedByCode)

	out := make([]string, 0, len(lines))
	out = append(out, lines[:block.Start]...)
	out = append(out, strings.Split(region, "\n")...)
	for i := 0; i < blankAfter; i++ {
		out = append(out, "")
	}
	out = append(out, tail...)

	result := strings.Join(out, "\n")
	if strings.HasSuffix(src, "\n") && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result, nil
}

// ProcessFile processes one Python source file. In in-place mode the file
// is rewritten only when its content changes; otherwise the organized
// import block is printed to stdout.
func (p *Processor) ProcessFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	filePackage := utils.GetFilePackage(path)
	organized, err := p.OrganizeSource(string(src), filePackage)
	if err != nil {
		return err
	}

	if p.config.InPlace {
		if organized == string(src) {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		}
		if err := os.WriteFile(path, []byte(organized), info.Mode().Perm()); err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		}
		return nil
	}

	lines := strings.Split(string(src), "\n")
	block, err := imports.ScanBlock(lines)
	if err != nil || block.Empty() {
		fmt.Print(string(src))
		return nil
	}
	fmt.Println(p.organizer.Format(block.Statements, filePackage))
	return nil
}

// ProcessFiles processes multiple Python source files.
func (p *Processor) ProcessFiles(paths []string) error {
	processedCount := 0
	errorCount := 0

	for _, path := range paths {
		if err := p.ProcessFile(path); err != nil {
			p.log.Warn("failed to process file", zap.String("path", path), zap.Error(err))
			errorCount++
			continue
		}
		processedCount++
		if p.config.InPlace {
			p.log.Info("processed", zap.String("path", path))
		}
	}

	p.log.Info("done",
		zap.Int("processed", processedCount),
		zap.Int("errors", errorCount))

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path.
func (p *Processor) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return p.ProcessFile(path)
	}

	if !p.config.InPlace {
		p.log.Warn(errors.WarnMsgProcessingDirWithoutInPlace)
	}

	pyFiles, err := utils.FindPythonFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPythonFiles, err)
	}
	if len(pyFiles) == 0 {
		p.log.Info("no Python files found", zap.String("path", path))
		return nil
	}

	p.log.Info("found Python files", zap.Int("count", len(pyFiles)), zap.String("path", path))
	return p.ProcessFiles(pyFiles)
}
