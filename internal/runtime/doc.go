// Invokes the external collaborators of the build pipeline.
//
// The pipeline delegates two operations to host binaries: mirroring the
// application source tree with "cp -a", and producing the image with the
// configured container builder ("<builder> build <dir> -t <tag>"). Both run
// as awaited subprocesses with their output streamed through; a non-zero
// exit or a failure to spawn aborts the build.
package runtime
