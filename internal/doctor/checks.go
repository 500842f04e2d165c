package doctor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/wowpub/internal/config"
	"github.com/conn-castle/wowpub/internal/messages"
	"github.com/conn-castle/wowpub/internal/mirror"
	"github.com/conn-castle/wowpub/internal/target"
	"github.com/conn-castle/wowpub/internal/workdir"
)

var (
	lookPath = exec.LookPath
	busyFn   = workdir.Busy
	guardFn  = workdir.Guard
)

// CheckConfig loads .wowpub.toml. The returned config is the defaults when
// loading fails so the remaining checks still run.
func CheckConfig(sys config.System, root string) (Result, config.Config) {
	cfg, err := config.Load(sys, root)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}, config.Default()
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, cfg.Packager.Version),
	}, cfg
}

// CheckInstallRoot validates WOW_HOME. The install root is empty on failure.
func CheckInstallRoot(sys config.System, root string) (Result, string) {
	installRoot, err := config.InstallRoot(sys, root)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInstallRoot,
			Message:        fmt.Sprintf(messages.DoctorInstallRootFailedFmt, err),
			Recommendation: messages.DoctorInstallRootRecommend,
		}, ""
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInstallRoot,
		Message:   fmt.Sprintf(messages.DoctorInstallRootFoundFmt, installRoot),
	}, installRoot
}

// CheckDestinations lists every installed game variant, whatever the selection.
func CheckDestinations(installRoot string) Result {
	keys := target.Select(target.NewSelection(target.AllFlavors, target.AllChannels))
	dests, err := target.Resolve(installRoot, keys)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameDestinations,
			Message:   fmt.Sprintf(messages.DoctorDestinationsFailedFmt, err),
		}
	}
	if len(dests) == 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameDestinations,
			Message:        messages.DoctorNoDestinations,
			Recommendation: messages.DoctorNoDestinationsRecommend,
		}
	}
	names := make([]string, 0, len(dests))
	for _, d := range dests {
		names = append(names, string(d.Key))
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameDestinations,
		Message:   fmt.Sprintf(messages.DoctorDestinationsFoundFmt, strings.Join(names, ", ")),
	}
}

// CheckMirror reports which engine a publish would use.
func CheckMirror(engine string) Result {
	res := Result{CheckName: messages.DoctorCheckNameMirror}
	normalized := strings.ToLower(strings.TrimSpace(engine))
	if !mirror.ValidEngine(normalized) {
		res.Status = StatusFail
		res.Message = fmt.Sprintf(messages.DoctorMirrorUnknownFmt, engine)
		res.Recommendation = messages.DoctorMirrorUnknownRecommend
		return res
	}
	if normalized == mirror.EngineNative {
		res.Status = StatusOK
		res.Message = messages.DoctorMirrorNative
		return res
	}
	path, err := lookPath(mirror.RsyncBinary)
	switch {
	case err == nil:
		res.Status = StatusOK
		res.Message = fmt.Sprintf(messages.DoctorMirrorRsyncFmt, path)
	case normalized == mirror.EngineRsync:
		res.Status = StatusFail
		res.Message = messages.DoctorMirrorRsyncMissing
		res.Recommendation = messages.DoctorMirrorRsyncRecommend
	default:
		res.Status = StatusWarn
		res.Message = messages.DoctorMirrorFallbackNative
	}
	return res
}

// CheckWorkDir reports whether the working directory is safe to wipe and
// whether another run currently holds it.
func CheckWorkDir(path string, projectDir string, installRoot string) Result {
	if err := guardFn(path, projectDir, installRoot); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameWorkDir,
			Message:        err.Error(),
			Recommendation: messages.DoctorWorkDirUnsafe,
		}
	}
	busy, err := busyFn(path)
	switch {
	case err != nil:
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameWorkDir,
			Message:   fmt.Sprintf(messages.DoctorWorkDirFailedFmt, path, err),
		}
	case busy:
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameWorkDir,
			Message:        fmt.Sprintf(messages.DoctorWorkDirBusyFmt, path),
			Recommendation: messages.DoctorWorkDirBusyRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameWorkDir,
		Message:   fmt.Sprintf(messages.DoctorWorkDirReadyFmt, path),
	}
}
