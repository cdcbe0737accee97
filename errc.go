// errc.go — the builtin errno-like domain xgx-throw ships with.
//
// Intent:
//   - Provide one widely useful code space for OS/infra-flavored failures so
//     projects can raise cheap domain errors without defining a domain first.
//   - Keep semantics open-ended: no retry/HTTP policy attached to codes.
//
// Conventions:
//   - ErrcNone (0) is the success code.
//   - Codes are ordered and stable; BuiltinErrcs exposes a defensive copy.
//   - The message table is total: unknown codes translate to a generic
//     message rather than failing (domains must never fail to translate).
package xgxthrow

// Errc enumerates the builtin errno-like code space.
type Errc int

const (
	ErrcNone Errc = iota // success

	ErrcAddressFamilyNotSupported
	ErrcAddressInUse
	ErrcAddressNotAvailable
	ErrcAlreadyConnected
	ErrcArgumentListTooLong
	ErrcArgumentOutOfDomain
	ErrcBadAddress
	ErrcBadFileDescriptor
	ErrcBadMessage
	ErrcBrokenPipe
	ErrcConnectionAborted
	ErrcConnectionAlreadyInProgress
	ErrcConnectionRefused
	ErrcConnectionReset
	ErrcCrossDeviceLink
	ErrcDestinationAddressRequired
	ErrcDeviceOrResourceBusy
	ErrcDirectoryNotEmpty
	ErrcExecutableFormatError
	ErrcFileExists
	ErrcFileTooLarge
	ErrcFilenameTooLong
	ErrcFunctionNotSupported
	ErrcHostUnreachable
	ErrcIdentifierRemoved
	ErrcIllegalByteSequence
	ErrcInappropriateIOControlOperation
	ErrcInterrupted
	ErrcInvalidArgument
	ErrcInvalidSeek
	ErrcIOError
	ErrcIsADirectory
	ErrcMessageSize
	ErrcNetworkDown
	ErrcNetworkReset
	ErrcNetworkUnreachable
	ErrcNoBufferSpace
	ErrcNoChildProcess
	ErrcNoLink
	ErrcNoLockAvailable
	ErrcNoMessage
	ErrcNoProtocolOption
	ErrcNoSpaceOnDevice
	ErrcNoSuchDeviceOrAddress
	ErrcNoSuchDevice
	ErrcNoSuchFileOrDirectory
	ErrcNoSuchProcess
	ErrcNotADirectory
	ErrcNotASocket
	ErrcNotConnected
	ErrcNotEnoughMemory
	ErrcNotSupported
	ErrcOperationCanceled
	ErrcOperationInProgress
	ErrcOperationNotPermitted
	ErrcOperationWouldBlock
	ErrcOwnerDead
	ErrcPermissionDenied
	ErrcProtocolError
	ErrcProtocolNotSupported
	ErrcReadOnlyFileSystem
	ErrcResourceDeadlockWouldOccur
	ErrcResourceUnavailableTryAgain
	ErrcResultOutOfRange
	ErrcStateNotRecoverable
	ErrcStreamTimeout
	ErrcTextFileBusy
	ErrcTimedOut
	ErrcTooManyFilesOpenInSystem
	ErrcTooManyFilesOpen
	ErrcTooManyLinks
	ErrcTooManySymbolicLinkLevels
	ErrcValueTooLarge
	ErrcWrongProtocolType
)

// allBuiltinErrcs is the ordered set of codes the domain ships with,
// excluding the success code. Unexported to keep the slice immutable.
var allBuiltinErrcs = []Errc{
	ErrcAddressFamilyNotSupported,
	ErrcAddressInUse,
	ErrcAddressNotAvailable,
	ErrcAlreadyConnected,
	ErrcArgumentListTooLong,
	ErrcArgumentOutOfDomain,
	ErrcBadAddress,
	ErrcBadFileDescriptor,
	ErrcBadMessage,
	ErrcBrokenPipe,
	ErrcConnectionAborted,
	ErrcConnectionAlreadyInProgress,
	ErrcConnectionRefused,
	ErrcConnectionReset,
	ErrcCrossDeviceLink,
	ErrcDestinationAddressRequired,
	ErrcDeviceOrResourceBusy,
	ErrcDirectoryNotEmpty,
	ErrcExecutableFormatError,
	ErrcFileExists,
	ErrcFileTooLarge,
	ErrcFilenameTooLong,
	ErrcFunctionNotSupported,
	ErrcHostUnreachable,
	ErrcIdentifierRemoved,
	ErrcIllegalByteSequence,
	ErrcInappropriateIOControlOperation,
	ErrcInterrupted,
	ErrcInvalidArgument,
	ErrcInvalidSeek,
	ErrcIOError,
	ErrcIsADirectory,
	ErrcMessageSize,
	ErrcNetworkDown,
	ErrcNetworkReset,
	ErrcNetworkUnreachable,
	ErrcNoBufferSpace,
	ErrcNoChildProcess,
	ErrcNoLink,
	ErrcNoLockAvailable,
	ErrcNoMessage,
	ErrcNoProtocolOption,
	ErrcNoSpaceOnDevice,
	ErrcNoSuchDeviceOrAddress,
	ErrcNoSuchDevice,
	ErrcNoSuchFileOrDirectory,
	ErrcNoSuchProcess,
	ErrcNotADirectory,
	ErrcNotASocket,
	ErrcNotConnected,
	ErrcNotEnoughMemory,
	ErrcNotSupported,
	ErrcOperationCanceled,
	ErrcOperationInProgress,
	ErrcOperationNotPermitted,
	ErrcOperationWouldBlock,
	ErrcOwnerDead,
	ErrcPermissionDenied,
	ErrcProtocolError,
	ErrcProtocolNotSupported,
	ErrcReadOnlyFileSystem,
	ErrcResourceDeadlockWouldOccur,
	ErrcResourceUnavailableTryAgain,
	ErrcResultOutOfRange,
	ErrcStateNotRecoverable,
	ErrcStreamTimeout,
	ErrcTextFileBusy,
	ErrcTimedOut,
	ErrcTooManyFilesOpenInSystem,
	ErrcTooManyFilesOpen,
	ErrcTooManyLinks,
	ErrcTooManySymbolicLinkLevels,
	ErrcValueTooLarge,
	ErrcWrongProtocolType,
}

// BuiltinErrcs returns a defensive copy of the failure codes in stable order.
func BuiltinErrcs() []Errc {
	out := make([]Errc, len(allBuiltinErrcs))
	copy(out, allBuiltinErrcs)
	return out
}

// ErrcDomain is the builtin errno-like domain. Success code: ErrcNone.
var ErrcDomain = NewDomain("errc", ErrcNone, errcMessage)

// errcMessage translates an Errc to its message. Total by construction.
func errcMessage(code Errc) string {
	switch code {
	case ErrcNone:
		return "success"
	case ErrcAddressFamilyNotSupported:
		return "address family not supported by protocol"
	case ErrcAddressInUse:
		return "address already in use"
	case ErrcAddressNotAvailable:
		return "cannot assign requested address"
	case ErrcAlreadyConnected:
		return "transport endpoint is already connected"
	case ErrcArgumentListTooLong:
		return "argument list too long"
	case ErrcArgumentOutOfDomain:
		return "numerical argument out of domain"
	case ErrcBadAddress:
		return "bad address"
	case ErrcBadFileDescriptor:
		return "bad file descriptor"
	case ErrcBadMessage:
		return "bad message"
	case ErrcBrokenPipe:
		return "broken pipe"
	case ErrcConnectionAborted:
		return "software caused connection abort"
	case ErrcConnectionAlreadyInProgress:
		return "operation already in progress"
	case ErrcConnectionRefused:
		return "connection refused"
	case ErrcConnectionReset:
		return "connection reset by peer"
	case ErrcCrossDeviceLink:
		return "invalid cross-device link"
	case ErrcDestinationAddressRequired:
		return "destination address required"
	case ErrcDeviceOrResourceBusy:
		return "device or resource busy"
	case ErrcDirectoryNotEmpty:
		return "directory not empty"
	case ErrcExecutableFormatError:
		return "exec format error"
	case ErrcFileExists:
		return "file exists"
	case ErrcFileTooLarge:
		return "file too large"
	case ErrcFilenameTooLong:
		return "file name too long"
	case ErrcFunctionNotSupported:
		return "function not implemented"
	case ErrcHostUnreachable:
		return "no route to host"
	case ErrcIdentifierRemoved:
		return "identifier removed"
	case ErrcIllegalByteSequence:
		return "invalid or incomplete multibyte or wide character"
	case ErrcInappropriateIOControlOperation:
		return "inappropriate ioctl for device"
	case ErrcInterrupted:
		return "interrupted system call"
	case ErrcInvalidArgument:
		return "invalid argument"
	case ErrcInvalidSeek:
		return "illegal seek"
	case ErrcIOError:
		return "input/output error"
	case ErrcIsADirectory:
		return "is a directory"
	case ErrcMessageSize:
		return "message too long"
	case ErrcNetworkDown:
		return "network is down"
	case ErrcNetworkReset:
		return "network dropped connection on reset"
	case ErrcNetworkUnreachable:
		return "network is unreachable"
	case ErrcNoBufferSpace:
		return "no buffer space available"
	case ErrcNoChildProcess:
		return "no child processes"
	case ErrcNoLink:
		return "link has been severed"
	case ErrcNoLockAvailable:
		return "no locks available"
	case ErrcNoMessage:
		return "no message of desired type"
	case ErrcNoProtocolOption:
		return "protocol not available"
	case ErrcNoSpaceOnDevice:
		return "no space left on device"
	case ErrcNoSuchDeviceOrAddress:
		return "no such device or address"
	case ErrcNoSuchDevice:
		return "no such device"
	case ErrcNoSuchFileOrDirectory:
		return "no such file or directory"
	case ErrcNoSuchProcess:
		return "no such process"
	case ErrcNotADirectory:
		return "not a directory"
	case ErrcNotASocket:
		return "socket operation on non-socket"
	case ErrcNotConnected:
		return "transport endpoint is not connected"
	case ErrcNotEnoughMemory:
		return "cannot allocate memory"
	case ErrcNotSupported:
		return "operation not supported"
	case ErrcOperationCanceled:
		return "operation canceled"
	case ErrcOperationInProgress:
		return "operation now in progress"
	case ErrcOperationNotPermitted:
		return "operation not permitted"
	case ErrcOperationWouldBlock:
		return "resource temporarily unavailable"
	case ErrcOwnerDead:
		return "owner died"
	case ErrcPermissionDenied:
		return "permission denied"
	case ErrcProtocolError:
		return "protocol error"
	case ErrcProtocolNotSupported:
		return "protocol not supported"
	case ErrcReadOnlyFileSystem:
		return "read-only file system"
	case ErrcResourceDeadlockWouldOccur:
		return "resource deadlock avoided"
	case ErrcResourceUnavailableTryAgain:
		return "resource temporarily unavailable"
	case ErrcResultOutOfRange:
		return "numerical result out of range"
	case ErrcStateNotRecoverable:
		return "state not recoverable"
	case ErrcStreamTimeout:
		return "timer expired"
	case ErrcTextFileBusy:
		return "text file busy"
	case ErrcTimedOut:
		return "connection timed out"
	case ErrcTooManyFilesOpenInSystem:
		return "too many open files in system"
	case ErrcTooManyFilesOpen:
		return "too many open files"
	case ErrcTooManyLinks:
		return "too many links"
	case ErrcTooManySymbolicLinkLevels:
		return "too many levels of symbolic links"
	case ErrcValueTooLarge:
		return "value too large for defined data type"
	case ErrcWrongProtocolType:
		return "protocol wrong type for socket"
	default:
		return "unspecified error"
	}
}
